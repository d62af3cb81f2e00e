package validator

import (
	"context"

	"svw.info/csp/internal/domain"
)

// FastValidator checks row/col/box uniqueness with one bitmask per
// unit; empty cells are skipped, so partial boards validate too.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate returns whether the board is conflict-free, plus the
// coordinates of every cell that repeats a value inside its unit.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)

	scan := func(cells [9]domain.CellCoord) {
		seen := 0
		for _, cc := range cells {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if seen&bit != 0 {
				conf = append(conf, cc)
			}
			seen |= bit
		}
	}

	var unit [9]domain.CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			unit[c] = domain.CellCoord{Row: r, Col: c}
		}
		scan(unit)
	}
	for c := 0; c < 9; c++ {
		for r := 0; r < 9; r++ {
			unit[r] = domain.CellCoord{Row: r, Col: c}
		}
		scan(unit)
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			i := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					unit[i] = domain.CellCoord{Row: br*3 + dr, Col: bc*3 + dc}
					i++
				}
			}
			scan(unit)
		}
	}
	return len(conf) == 0, conf, nil
}
