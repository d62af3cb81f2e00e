package ports

import (
	"context"
	"time"

	"svw.info/csp/internal/domain"
)

// Stats captures performance characteristics of a search.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// GridSolver completes a board and can enumerate its completions.
type GridSolver interface {
	// Solve returns one completed board, or an error when none exists.
	// The input board is never modified.
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	// Count enumerates completions up to limit (limit <= 0 means all)
	// and returns a copy of each complete board found.
	Count(ctx context.Context, b *domain.Board, limit int) ([]domain.Board, Stats, error)
}

// Generator creates new puzzles with a target clue count.
type Generator interface {
	Generate(ctx context.Context, seed int64, clues int) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
