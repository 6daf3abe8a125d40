package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/ports"
)

var (
	// ErrUnsolvable means no grid satisfies all constraints: a line's
	// candidate set was empty at construction or was emptied by filtering.
	ErrUnsolvable = errors.New("puzzle has no solution")
	// ErrAmbiguous means propagation reached a fixpoint with cells still
	// undetermined; more than one grid fits the constraints as far as
	// line-by-line deduction can tell.
	ErrAmbiguous = errors.New("puzzle is ambiguous: propagation stalled")
)

// PropagationSolver solves by pure constraint propagation: it keeps every
// arrangement still possible for each row and column, repeatedly writes the
// cells all of a line's arrangements agree on into the grid, and uses the
// grid to discard arrangements of the crossing lines.
type PropagationSolver struct{}

func NewPropagationSolver() *PropagationSolver { return &PropagationSolver{} }

// engine owns the grid and the per-line candidate sets. Single-threaded.
type engine struct {
	grid *domain.Grid
	rows [][]domain.Line // surviving arrangements per row
	cols [][]domain.Line // surviving arrangements per column
}

func newEngine(p *domain.Puzzle) (*engine, error) {
	h, w := p.Height(), p.Width()
	e := &engine{
		grid: domain.NewGrid(h, w),
		rows: make([][]domain.Line, h),
		cols: make([][]domain.Line, w),
	}
	for i, rc := range p.Rows {
		e.rows[i] = Enumerate(rc, w)
		if len(e.rows[i]) == 0 {
			return nil, fmt.Errorf("row %d: constraint %v does not fit in %d cells: %w", i, []int(rc), w, ErrUnsolvable)
		}
	}
	for j, cc := range p.Columns {
		e.cols[j] = Enumerate(cc, h)
		if len(e.cols[j]) == 0 {
			return nil, fmt.Errorf("column %d: constraint %v does not fit in %d cells: %w", j, []int(cc), h, ErrUnsolvable)
		}
	}
	return e, nil
}

// candidates is the total arrangement count across all lines, the measure of
// per-cycle progress alongside the grid's unknown count.
func (e *engine) candidates() int {
	n := 0
	for _, s := range e.rows {
		n += len(s)
	}
	for _, s := range e.cols {
		n += len(s)
	}
	return n
}

// step runs one propagation cycle: consolidate every row and every column
// into the grid first, so both axes' facts land in the same snapshot, then
// filter every line's candidates against the merged grid.
func (e *engine) step() error {
	for i, cands := range e.rows {
		mergeRow(e.grid, i, Consolidate(cands))
	}
	for j, cands := range e.cols {
		mergeColumn(e.grid, j, Consolidate(cands))
	}
	for i := range e.rows {
		e.rows[i] = Filter(e.rows[i], e.grid.Row(i))
		if len(e.rows[i]) == 0 {
			return fmt.Errorf("row %d: all arrangements eliminated: %w", i, ErrUnsolvable)
		}
	}
	for j := range e.cols {
		e.cols[j] = Filter(e.cols[j], e.grid.Column(j))
		if len(e.cols[j]) == 0 {
			return fmt.Errorf("column %d: all arrangements eliminated: %w", j, ErrUnsolvable)
		}
	}
	return nil
}

// run iterates step until the grid is solved or a cycle makes no progress.
// Facts are only ever added, so comparing unknown-cell and candidate counts
// across a cycle is a sound stall check.
func (e *engine) run(ctx context.Context) (cycles int, err error) {
	for !e.grid.Solved() {
		if err := ctx.Err(); err != nil {
			return cycles, err
		}
		beforeUnknown := e.grid.Unknowns()
		beforeCands := e.candidates()
		if err := e.step(); err != nil {
			return cycles, err
		}
		cycles++
		if e.grid.Unknowns() == beforeUnknown && e.candidates() == beforeCands {
			return cycles, ErrAmbiguous
		}
	}
	return cycles, nil
}

func (e *engine) clone() *engine {
	out := &engine{
		grid: e.grid.Clone(),
		rows: make([][]domain.Line, len(e.rows)),
		cols: make([][]domain.Line, len(e.cols)),
	}
	for i, s := range e.rows {
		out.rows[i] = append([]domain.Line(nil), s...)
	}
	for j, s := range e.cols {
		out.cols[j] = append([]domain.Line(nil), s...)
	}
	return out
}

func mergeRow(g *domain.Grid, i int, facts domain.Line) {
	row := g.Row(i)
	for j, state := range facts {
		if state != domain.Unknown {
			row[j] = state
		}
	}
}

func mergeColumn(g *domain.Grid, j int, facts domain.Line) {
	for i, state := range facts {
		if state != domain.Unknown {
			g.Cells[i][j] = state
		}
	}
}

// Solve runs propagation to completion. Ambiguous puzzles surface as
// ErrAmbiguous rather than looping forever.
func (s *PropagationSolver) Solve(ctx context.Context, p *domain.Puzzle) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	e, err := newEngine(p)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	cycles, err := e.run(ctx)
	st := ports.Stats{Cycles: cycles, Duration: time.Since(start)}
	if err != nil {
		return nil, st, err
	}
	return e.grid, st, nil
}

// Unique reports whether exactly one grid satisfies the puzzle, as far as
// propagation alone can tell: a clean solve means yes, a stall means no.
func (s *PropagationSolver) Unique(ctx context.Context, p *domain.Puzzle) (bool, ports.Stats, error) {
	_, st, err := s.Solve(ctx, p)
	if errors.Is(err, ErrAmbiguous) {
		return false, st, nil
	}
	if err != nil {
		return false, st, err
	}
	return true, st, nil
}
