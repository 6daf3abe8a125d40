package solver

import (
	"strconv"
	"strings"
	"sync"

	"svw.info/nonogram/internal/domain"
)

// enumeration results are cached process-wide; lines handed out from the
// cache are shared and must never be mutated by callers.
var (
	memoMu sync.RWMutex
	memo   = map[string][]domain.Line{}
)

func memoKey(c domain.Constraint, length int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(length))
	for _, run := range c {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(run))
	}
	return b.String()
}

// Enumerate returns every arrangement of length cells containing exactly the
// constraint's runs, in order, separated by at least one empty cell. An empty
// constraint yields the single all-empty line; a constraint that cannot fit
// yields no arrangements.
//
// The result set grows combinatorially for loosely constrained long lines
// (a length-n line with constraint [1] already has n arrangements); memory is
// the practical limit and no cap is imposed.
func Enumerate(c domain.Constraint, length int) []domain.Line {
	key := memoKey(c, length)
	memoMu.RLock()
	cached, ok := memo[key]
	memoMu.RUnlock()
	if ok {
		// fresh top-level slice; the lines themselves stay shared
		return append([]domain.Line(nil), cached...)
	}
	lines := enumerate(c, length)
	memoMu.Lock()
	memo[key] = lines
	memoMu.Unlock()
	return append([]domain.Line(nil), lines...)
}

func enumerate(c domain.Constraint, length int) []domain.Line {
	if length < 0 {
		// negative length signals "no cells before the first block";
		// only an empty constraint fits there.
		if len(c) == 0 {
			return []domain.Line{{}}
		}
		return nil
	}
	if len(c) == 0 {
		return []domain.Line{blankLine(length)}
	}

	init, last := c[:len(c)-1], c[len(c)-1]
	var out []domain.Line
	for n := 0; n+last <= length; n++ {
		for _, prefix := range enumerate(init, n-1) {
			line := make(domain.Line, 0, length)
			line = append(line, prefix...)
			if n != 0 {
				line = append(line, domain.Empty) // separator before the block
			}
			for k := 0; k < last; k++ {
				line = append(line, domain.Filled)
			}
			for len(line) < length {
				line = append(line, domain.Empty)
			}
			out = append(out, line)
		}
	}
	return out
}

func blankLine(length int) domain.Line {
	line := make(domain.Line, length)
	for i := range line {
		line[i] = domain.Empty
	}
	return line
}
