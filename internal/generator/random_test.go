package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/solver"
)

func gridOf(t *testing.T, rows ...string) *domain.Grid {
	t.Helper()
	g := domain.NewGrid(len(rows), len(rows[0]))
	for i, row := range rows {
		for j, r := range row {
			if r == '#' {
				g.Cells[i][j] = domain.Filled
			} else {
				g.Cells[i][j] = domain.Empty
			}
		}
	}
	return g
}

func TestConstraintsDerivation(t *testing.T) {
	g := gridOf(t,
		"##.#",
		"....",
		"#..#",
	)
	rows, cols := Constraints(g)
	require.Equal(t, []domain.Constraint{{2, 1}, {}, {1, 1}}, rows)
	require.Equal(t, []domain.Constraint{{1, 1}, {1}, {}, {1, 1}}, cols)
}

func TestGenerateUniqueRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)

	p, st, err := g.Generate(ctx, 12345, 5, 5, 0.5)
	require.NoError(t, err)
	require.Equal(t, 5, p.Height())
	require.Equal(t, 5, p.Width())
	require.Less(t, st.Duration, 2*time.Second)

	// the solver must reproduce a grid whose runs are exactly the
	// generated constraints
	grid, _, err := s.Solve(ctx, p)
	require.NoError(t, err)
	rows, cols := Constraints(grid)
	require.Equal(t, p.Rows, rows)
	require.Equal(t, p.Columns, cols)
}

func TestGenerateRejectsBadDimensions(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	_, _, err := g.Generate(context.Background(), 1, 0, 5, 0.5)
	require.Error(t, err)
}

func TestGenerateIsSeedDeterministic(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	a, _, err := g.Generate(ctx, 99, 4, 4, 0.6)
	require.NoError(t, err)
	b, _, err := g.Generate(ctx, 99, 4, 4, 0.6)
	require.NoError(t, err)
	require.Equal(t, a.Rows, b.Rows)
	require.Equal(t, a.Columns, b.Columns)
}
