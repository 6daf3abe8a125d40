package hint

import (
	"context"
	"fmt"

	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/solver"
)

// Forced implements a minimal Hinter that finds the first cell pinned down by
// a single line's surviving arrangements.
type Forced struct{}

func NewForced() *Forced { return &Forced{} }

// Hint scans rows then columns for a cell the grid does not know yet but the
// line's arrangements all agree on.
func (h *Forced) Hint(ctx context.Context, p *domain.Puzzle, g *domain.Grid) (domain.Hint, bool, error) {
	for i, rc := range p.Rows {
		known := g.Row(i)
		cands := solver.Filter(solver.Enumerate(rc, p.Width()), known)
		if len(cands) == 0 {
			continue // contradicted line; nothing sensible to suggest
		}
		facts := solver.Consolidate(cands)
		for j, state := range facts {
			if state != domain.Unknown && known[j] == domain.Unknown {
				return forced(domain.AxisRow, i, domain.CellCoord{Row: i, Col: j}, state), true, nil
			}
		}
	}
	for j, cc := range p.Columns {
		known := g.Column(j)
		cands := solver.Filter(solver.Enumerate(cc, p.Height()), known)
		if len(cands) == 0 {
			continue
		}
		facts := solver.Consolidate(cands)
		for i, state := range facts {
			if state != domain.Unknown && known[i] == domain.Unknown {
				return forced(domain.AxisColumn, j, domain.CellCoord{Row: i, Col: j}, state), true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func forced(axis domain.Axis, index int, cell domain.CellCoord, state domain.Cell) domain.Hint {
	verb := "filled"
	if state == domain.Empty {
		verb = "blank"
	}
	return domain.Hint{
		Message: fmt.Sprintf("%s %d forces this cell to be %s", axis, index, verb),
		Cell:    cell,
		State:   state,
	}
}
