package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/csp/internal/domain"
	"svw.info/csp/internal/ports"
)

// CarveGenerator builds a full random solution first, then removes
// clues one at a time, keeping a removal only while the board still has
// exactly one completion. Unlike RandomGenerator it guarantees
// uniqueness, at the price of more solver work per puzzle.
type CarveGenerator struct {
	Solver ports.GridSolver
	// Budget bounds the carving phase; clue removal stops when it runs
	// out even if the target has not been reached.
	Budget time.Duration
}

func NewCarveGenerator(s ports.GridSolver) *CarveGenerator {
	return &CarveGenerator{Solver: s, Budget: 900 * time.Millisecond}
}

// Generate creates a unique-solution puzzle with at most 81 and roughly
// clues givens (carving stops at the target or at the time budget).
func (g *CarveGenerator) Generate(ctx context.Context, seed int64, clues int) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if clues < 17 || clues > 81 {
		return nil, ports.Stats{}, fmt.Errorf("clue target %d out of range [17,81]", clues)
	}
	rng := rand.New(rand.NewSource(seed))

	var full [9][9]uint8
	if !fillRandom(ctx, rng, &full) {
		return nil, ports.Stats{Duration: time.Since(start)}, context.Cause(ctx)
	}

	puz := full
	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = true
		}
	}
	positions := make([]int, 81)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	deadline := start.Add(g.Budget)
	nodes := 0
	remaining := 81
	for _, pos := range positions {
		if remaining <= clues || time.Now().After(deadline) || ctx.Err() != nil {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		fixed[r][c] = false
		sols, st, _ := g.Solver.Count(ctx, &domain.Board{Values: puz}, 2)
		nodes += st.Nodes
		if len(sols) == 1 {
			remaining--
		} else {
			puz[r][c] = old
			fixed[r][c] = true
		}
	}

	p := &domain.Puzzle{
		Seed:      seed,
		Clues:     remaining,
		Board:     domain.Board{Values: puz, Fixed: fixed},
		CreatedAt: time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom solves an empty grid into a full valid solution by trying
// values in a random order at each cell.
func fillRandom(ctx context.Context, rng *rand.Rand, grid *[9][9]uint8) bool {
	var nums [9]uint8
	for i := 0; i < 9; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		order := nums
		for _, v := range order {
			if placeable(grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}
