package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/domain"
)

var diagonalPuzzle = &domain.Puzzle{
	Rows:    []domain.Constraint{{1}, {1}},
	Columns: []domain.Constraint{{1}, {1}},
}

func TestBacktrackingResolvesDiagonal(t *testing.T) {
	// propagation stalls on this puzzle; guessing picks the arrangement
	// reached first in enumeration order, which pins the top-left cell
	g, st, err := NewBacktrackingSolver().Solve(solveCtx(t), diagonalPuzzle)
	require.NoError(t, err)
	require.Equal(t, "# .\n. #", g.String())
	require.Greater(t, st.Guesses, 0)
}

func TestBacktrackingAgreesOnPropagationPuzzles(t *testing.T) {
	fromProp, _, err := NewPropagationSolver().Solve(solveCtx(t), plusPuzzle)
	require.NoError(t, err)
	fromBack, st, err := NewBacktrackingSolver().Solve(solveCtx(t), plusPuzzle)
	require.NoError(t, err)
	require.Equal(t, fromProp.String(), fromBack.String())
	require.Zero(t, st.Guesses, "no guessing needed when propagation suffices")
}

func TestBacktrackingUnsolvable(t *testing.T) {
	p := &domain.Puzzle{
		Rows:    []domain.Constraint{{2}, {}},
		Columns: []domain.Constraint{{2}, {}},
	}
	_, _, err := NewBacktrackingSolver().Solve(solveCtx(t), p)
	require.ErrorIs(t, err, ErrUnsolvable)
}

func TestBacktrackingUnique(t *testing.T) {
	cases := []struct {
		name   string
		puzzle *domain.Puzzle
		want   bool
	}{
		{"cross has one solution", plusPuzzle, true},
		{"diagonal has two", diagonalPuzzle, false},
		{"unsolvable has none", &domain.Puzzle{
			Rows:    []domain.Constraint{{5}},
			Columns: []domain.Constraint{{1}, {1}, {1}},
		}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, _, err := NewBacktrackingSolver().Unique(solveCtx(t), tc.puzzle)
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}
