package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/ports"
)

// BacktrackingSolver layers guessing on top of propagation: it propagates to
// a fixpoint, and when that stalls it branches on the arrangements of the
// most constrained undecided line. Resolves puzzles propagation alone calls
// ambiguous, at exponential worst-case cost.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// branch picks the undecided line with the fewest surviving arrangements.
func branch(e *engine) (axis domain.Axis, index int, ok bool) {
	best := -1
	for i, s := range e.rows {
		if len(s) > 1 && (best == -1 || len(s) < best) {
			axis, index, best, ok = domain.AxisRow, i, len(s), true
		}
	}
	for j, s := range e.cols {
		if len(s) > 1 && (best == -1 || len(s) < best) {
			axis, index, best, ok = domain.AxisColumn, j, len(s), true
		}
	}
	return axis, index, ok
}

// assume pins one line to a single arrangement on a cloned engine.
func assume(e *engine, axis domain.Axis, index int, line domain.Line) *engine {
	out := e.clone()
	if axis == domain.AxisRow {
		out.rows[index] = []domain.Line{line}
	} else {
		out.cols[index] = []domain.Line{line}
	}
	return out
}

func (s *BacktrackingSolver) Solve(ctx context.Context, p *domain.Puzzle) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	e, err := newEngine(p)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	st := ports.Stats{}
	var dfs func(e *engine) (*domain.Grid, error)
	dfs = func(e *engine) (*domain.Grid, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cycles, err := e.run(ctx)
		st.Cycles += cycles
		switch {
		case err == nil:
			return e.grid, nil
		case !errors.Is(err, ErrAmbiguous):
			return nil, err
		}
		axis, index, ok := branch(e)
		if !ok {
			// stalled with every line decided; nothing left to guess on
			return nil, ErrUnsolvable
		}
		for _, line := range candidatesFor(e, axis, index) {
			st.Guesses++
			g, err := dfs(assume(e, axis, index, line))
			if err == nil {
				return g, nil
			}
			if !errors.Is(err, ErrUnsolvable) {
				return nil, err
			}
			// contradiction under this guess; try the next arrangement
		}
		return nil, ErrUnsolvable
	}
	g, err := dfs(e)
	st.Duration = time.Since(start)
	if err != nil {
		return nil, st, err
	}
	return g, st, nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, p *domain.Puzzle) (bool, ports.Stats, error) {
	start := time.Now()
	e, err := newEngine(p)
	if err != nil {
		if errors.Is(err, ErrUnsolvable) {
			return false, ports.Stats{Duration: time.Since(start)}, nil
		}
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	st := ports.Stats{}
	count := 0
	var dfs func(e *engine) error
	dfs = func(e *engine) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if count >= 2 {
			return nil // stop early
		}
		cycles, err := e.run(ctx)
		st.Cycles += cycles
		switch {
		case err == nil:
			count++
			return nil
		case errors.Is(err, ErrUnsolvable):
			return nil
		case !errors.Is(err, ErrAmbiguous):
			return err
		}
		axis, index, ok := branch(e)
		if !ok {
			return nil
		}
		for _, line := range candidatesFor(e, axis, index) {
			st.Guesses++
			if err := dfs(assume(e, axis, index, line)); err != nil {
				return err
			}
			if count >= 2 {
				return nil
			}
		}
		return nil
	}
	err = dfs(e)
	st.Duration = time.Since(start)
	if err != nil {
		return false, st, err
	}
	return count == 1, st, nil
}

func candidatesFor(e *engine, axis domain.Axis, index int) []domain.Line {
	if axis == domain.AxisRow {
		return e.rows[index]
	}
	return e.cols[index]
}
