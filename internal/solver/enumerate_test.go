package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/domain"
)

// parseLine turns a glyph string into a line: '#' filled, '.' empty, '?' unknown.
func parseLine(s string) domain.Line {
	line := make(domain.Line, len(s))
	for i, r := range s {
		switch r {
		case '#':
			line[i] = domain.Filled
		case '.':
			line[i] = domain.Empty
		default:
			line[i] = domain.Unknown
		}
	}
	return line
}

// runsOf extracts the maximal filled runs of a line.
func runsOf(line domain.Line) []int {
	var runs []int
	current := 0
	for _, c := range line {
		if c == domain.Filled {
			current++
			continue
		}
		if current > 0 {
			runs = append(runs, current)
			current = 0
		}
	}
	if current > 0 {
		runs = append(runs, current)
	}
	return runs
}

func TestEnumerateEmptyConstraint(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		lines := Enumerate(nil, n)
		require.Len(t, lines, 1, "length %d", n)
		require.Len(t, lines[0], n)
		for _, c := range lines[0] {
			require.Equal(t, domain.Empty, c)
		}
	}
}

func TestEnumerateCountsAndStructure(t *testing.T) {
	cases := []struct {
		name       string
		constraint domain.Constraint
		length     int
		want       int
	}{
		{"single cell run", domain.Constraint{1}, 5, 5},
		{"pair run", domain.Constraint{2}, 5, 4},
		{"two runs tight-ish", domain.Constraint{1, 1}, 4, 3},
		{"exact fit", domain.Constraint{1, 2}, 4, 1},
		{"full line", domain.Constraint{3}, 3, 1},
		{"does not fit", domain.Constraint{5}, 3, 0},
		{"separators overflow", domain.Constraint{2, 2}, 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines := Enumerate(tc.constraint, tc.length)
			require.Len(t, lines, tc.want)
			for _, line := range lines {
				require.Len(t, line, tc.length)
				require.Equal(t, []int(tc.constraint), runsOf(line))
				for _, c := range line {
					require.NotEqual(t, domain.Unknown, c, "candidates are fully determined")
				}
			}
		})
	}
}

func TestEnumerateMemoizedResultsMatch(t *testing.T) {
	first := Enumerate(domain.Constraint{2, 1}, 7)
	second := Enumerate(domain.Constraint{2, 1}, 7)
	require.Equal(t, first, second)
	// the top-level slice must be fresh so callers can filter independently
	second[0] = nil
	refreshed := Enumerate(domain.Constraint{2, 1}, 7)
	require.NotNil(t, refreshed[0])
}
