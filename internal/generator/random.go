package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/ports"
)

// ErrNoUniquePuzzle means no uniquely solvable grid was found within the
// attempt budget for the requested dimensions and density.
var ErrNoUniquePuzzle = errors.New("could not generate a unique puzzle")

const maxAttempts = 64

// Constraints derives the row and column run lengths from a fully determined
// grid. Useful on its own for turning pixel art into a puzzle.
func Constraints(g *domain.Grid) (rows, cols []domain.Constraint) {
	rows = make([]domain.Constraint, g.Height())
	for i := range rows {
		rows[i] = runs(g.Row(i))
	}
	cols = make([]domain.Constraint, g.Width())
	for j := range cols {
		cols[j] = runs(g.Column(j))
	}
	return rows, cols
}

func runs(line domain.Line) domain.Constraint {
	c := domain.Constraint{}
	current := 0
	for _, cell := range line {
		if cell == domain.Filled {
			current++
			continue
		}
		if current > 0 {
			c = append(c, current)
			current = 0
		}
	}
	if current > 0 {
		c = append(c, current)
	}
	return c
}

// Generate draws random grids at the given fill density until one's derived
// constraints admit exactly one solution, bounded by attempts and a deadline.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, height, width int, density float64) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if height <= 0 || width <= 0 {
		return nil, ports.Stats{}, errors.New("dimensions must be positive")
	}
	if density <= 0 || density >= 1 {
		density = 0.5
	}
	rng := rand.New(rand.NewSource(seed))
	deadline := start.Add(900 * time.Millisecond)
	st := ports.Stats{}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		if time.Now().After(deadline) {
			break
		}
		grid := randomGrid(rng, height, width, density)
		rows, cols := Constraints(grid)
		p := &domain.Puzzle{
			Seed:      seed,
			Rows:      rows,
			Columns:   cols,
			CreatedAt: time.Now().Unix(),
		}
		unique, ust, err := g.Solver.Unique(ctx, p)
		st.Cycles += ust.Cycles
		st.Guesses += ust.Guesses
		if err != nil {
			return nil, st, err
		}
		if unique {
			st.Duration = time.Since(start)
			return p, st, nil
		}
	}
	st.Duration = time.Since(start)
	return nil, st, ErrNoUniquePuzzle
}

func randomGrid(rng *rand.Rand, height, width int, density float64) *domain.Grid {
	grid := domain.NewGrid(height, width)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			if rng.Float64() < density {
				grid.Cells[i][j] = domain.Filled
			} else {
				grid.Cells[i][j] = domain.Empty
			}
		}
	}
	return grid
}
