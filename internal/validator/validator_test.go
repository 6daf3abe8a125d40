package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/nonogram/internal/domain"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name      string
		puzzle    *domain.Puzzle
		ok        bool
		conflicts int
	}{
		{
			name: "well formed",
			puzzle: &domain.Puzzle{
				Rows:    []domain.Constraint{{1}, {1}, {5}, {1}, {1}},
				Columns: []domain.Constraint{{1}, {1}, {5}, {1}, {1}},
			},
			ok: true,
		},
		{
			name: "empty constraints are fine",
			puzzle: &domain.Puzzle{
				Rows:    []domain.Constraint{{}, {}},
				Columns: []domain.Constraint{{}, {}},
			},
			ok: true,
		},
		{
			name: "non-positive run",
			puzzle: &domain.Puzzle{
				Rows:    []domain.Constraint{{0}, {1}},
				Columns: []domain.Constraint{{1}, {}},
			},
			conflicts: 1,
		},
		{
			name: "constraint longer than line",
			puzzle: &domain.Puzzle{
				Rows:    []domain.Constraint{{5}},
				Columns: []domain.Constraint{{1}, {1}, {1}},
			},
			conflicts: 2, // overlong row plus total mismatch
		},
		{
			name: "separators push runs past line end",
			puzzle: &domain.Puzzle{
				Rows:    []domain.Constraint{{2, 2}},
				Columns: []domain.Constraint{{1}, {1}, {1}, {1}},
			},
			conflicts: 1,
		},
		{
			name: "filled totals disagree",
			puzzle: &domain.Puzzle{
				Rows:    []domain.Constraint{{2}, {}},
				Columns: []domain.Constraint{{1}, {}},
			},
			conflicts: 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, conflicts, err := New().Validate(context.Background(), tc.puzzle)
			require.NoError(t, err)
			require.Equal(t, tc.ok, ok)
			require.Len(t, conflicts, tc.conflicts)
		})
	}
}
