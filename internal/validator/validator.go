package validator

import (
	"context"
	"fmt"

	"svw.info/nonogram/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// minSpan is the fewest cells a constraint can occupy: all runs plus one
// separator between each pair.
func minSpan(c domain.Constraint) int {
	if len(c) == 0 {
		return 0
	}
	n := len(c) - 1
	for _, run := range c {
		n += run
	}
	return n
}

func sum(c domain.Constraint) int {
	n := 0
	for _, run := range c {
		n += run
	}
	return n
}

// Validate checks puzzle structure before any solving: positive run lengths,
// constraints that fit their lines, and matching filled-cell totals across
// the two axes.
func (v *FastValidator) Validate(ctx context.Context, p *domain.Puzzle) (bool, []domain.Conflict, error) {
	conf := make([]domain.Conflict, 0, 4)
	check := func(axis domain.Axis, index int, c domain.Constraint, length int) {
		for _, run := range c {
			if run <= 0 {
				conf = append(conf, domain.Conflict{
					Axis:   axis,
					Index:  index,
					Reason: fmt.Sprintf("run length %d is not positive", run),
				})
				return
			}
		}
		if span := minSpan(c); span > length {
			conf = append(conf, domain.Conflict{
				Axis:   axis,
				Index:  index,
				Reason: fmt.Sprintf("runs need %d cells but the line has %d", span, length),
			})
		}
	}
	for i, rc := range p.Rows {
		check(domain.AxisRow, i, rc, p.Width())
	}
	for j, cc := range p.Columns {
		check(domain.AxisColumn, j, cc, p.Height())
	}

	// both axes describe the same cells, so their filled totals must match
	rowTotal, colTotal := 0, 0
	for _, rc := range p.Rows {
		rowTotal += sum(rc)
	}
	for _, cc := range p.Columns {
		colTotal += sum(cc)
	}
	if rowTotal != colTotal {
		conf = append(conf, domain.Conflict{
			Axis:   domain.AxisRow,
			Index:  -1,
			Reason: fmt.Sprintf("rows fill %d cells, columns fill %d", rowTotal, colTotal),
		})
	}
	return len(conf) == 0, conf, nil
}
