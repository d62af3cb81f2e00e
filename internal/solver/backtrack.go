package solver

import "errors"

// ErrUnsolvable is returned when a board admits no completion.
var ErrUnsolvable = errors.New("no completion exists")

// Backtracking is a straightforward recursive solver: depth-first over
// empty cells in row-major order, candidate values 1..9 ascending, with
// row/col/box uniqueness as the only pruning.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// feasible reports whether v can be placed at (r,c): 27 cell reads.
func feasible(g *[9][9]uint8, r, c int, v uint8) bool {
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

// nextEmpty returns the first empty cell in row-major order.
func nextEmpty(g *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
