package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/csp/internal/domain"
	"svw.info/csp/internal/ports"
)

// RandomGenerator builds puzzles by committing uniformly random
// locally-feasible placements, then verifying global solvability with
// the wired solver. Construction is retried up to MaxOuterTries; if no
// verified puzzle emerges, the last constructed board is returned with
// Degraded set.
type RandomGenerator struct {
	Solver ports.GridSolver
	// RequireSolvable verifies each candidate with a full solve before
	// accepting it. Off, the first board reaching the clue target wins.
	RequireSolvable  bool
	MaxOuterTries    int
	MaxInnerAttempts int
}

// NewRandomGenerator wires a generator with the default attempt budget.
func NewRandomGenerator(s ports.GridSolver) *RandomGenerator {
	return &RandomGenerator{
		Solver:           s,
		RequireSolvable:  true,
		MaxOuterTries:    200,
		MaxInnerAttempts: 2000,
	}
}

// Generate creates a puzzle with exactly clues filled cells using seed.
func (g *RandomGenerator) Generate(ctx context.Context, seed int64, clues int) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if clues < 0 || clues > 81 {
		return nil, ports.Stats{}, fmt.Errorf("clue target %d out of range [0,81]", clues)
	}
	rng := rand.New(rand.NewSource(seed))
	nodes := 0
	var last domain.Board

	for try := 0; try < g.MaxOuterTries; try++ {
		if ctx.Err() != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, context.Cause(ctx)
		}
		var grid [9][9]uint8
		filled := 0
		for attempt := 0; filled < clues && attempt < g.MaxInnerAttempts; attempt++ {
			r := rng.Intn(9)
			c := rng.Intn(9)
			v := uint8(rng.Intn(9) + 1)
			if grid[r][c] == 0 && placeable(&grid, r, c, v) {
				grid[r][c] = v
				filled++
			}
		}
		last = domain.Board{Values: grid, Fixed: givens(&grid)}
		if filled < clues {
			// Random draws ran out before reaching the target; retry.
			continue
		}
		if !g.RequireSolvable {
			return newPuzzle(seed, last, false), ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}
		// Global check runs on a copy; the candidate stays unsolved.
		probe := domain.Board{Values: grid}
		_, st, err := g.Solver.Solve(ctx, &probe)
		nodes += st.Nodes
		if err == nil {
			return newPuzzle(seed, last, false), ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}
		if cause := context.Cause(ctx); cause != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, cause
		}
	}
	// Best-effort fallback: solvability was never confirmed.
	return newPuzzle(seed, last, true), ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

func newPuzzle(seed int64, b domain.Board, degraded bool) *domain.Puzzle {
	return &domain.Puzzle{
		Seed:      seed,
		Clues:     b.Clues(),
		Board:     b,
		Degraded:  degraded,
		CreatedAt: time.Now().UnixNano(),
	}
}

func givens(g *[9][9]uint8) [9][9]bool {
	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = g[r][c] != 0
		}
	}
	return fixed
}

// placeable mirrors row/col/box checks locally for the generator.
func placeable(g *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
