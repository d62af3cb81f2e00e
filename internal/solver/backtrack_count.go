package solver

import (
	"context"
	"time"

	"svw.info/csp/internal/domain"
	"svw.info/csp/internal/ports"
)

// Count enumerates completions of b, recording a copy of each complete
// grid, until limit solutions are found (limit <= 0 means all). The
// limit is checked on entry to each recursive call, so frames already
// descended past it unwind normally. b is unchanged afterwards.
func (s *Backtracking) Count(ctx context.Context, b *domain.Board, limit int) ([]domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	var found []domain.Board

	var dfs func()
	dfs = func() {
		if ctx.Err() != nil {
			return
		}
		if limit > 0 && len(found) >= limit {
			return
		}
		r, c, ok := nextEmpty(&grid)
		if !ok {
			found = append(found, domain.Board{Values: grid})
			return
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if feasible(&grid, r, c, v) {
				grid[r][c] = v
				dfs()
				grid[r][c] = 0
			}
		}
	}
	dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := context.Cause(ctx); err != nil {
		return found, st, err
	}
	return found, st, nil
}

// Unique reports whether b has exactly one completion.
func (s *Backtracking) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	sols, st, err := s.Count(ctx, b, 2)
	return len(sols) == 1, st, err
}
