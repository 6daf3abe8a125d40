package ports

import (
	"context"
	"time"

	"svw.info/nonogram/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Cycles   int
	Guesses  int
	Duration time.Duration
}

// Solver determines the grid for a puzzle and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, p *domain.Puzzle) (*domain.Grid, Stats, error)
	Unique(ctx context.Context, p *domain.Puzzle) (bool, Stats, error)
}

// Generator creates new puzzles at target dimensions.
type Generator interface {
	Generate(ctx context.Context, seed int64, height, width int, density float64) (*domain.Puzzle, Stats, error)
}

// Validator performs fast structural checks on puzzle constraints.
type Validator interface {
	Validate(ctx context.Context, p *domain.Puzzle) (ok bool, conflicts []domain.Conflict, err error)
}

// Hinter returns one cell forced by the current partial grid.
type Hinter interface {
	Hint(ctx context.Context, p *domain.Puzzle, g *domain.Grid) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
