package domain

// Board holds current cell values and which cells are fixed givens.
// A zero value means the cell is empty.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// Clues reports the number of non-empty cells.
func (b *Board) Clues() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a generated board with metadata.
type Puzzle struct {
	ID    string `json:"id,omitempty"`
	Seed  int64  `json:"seed,omitempty"`
	Clues int    `json:"clues"`
	Board Board  `json:"board"`
	// Degraded marks a best-effort puzzle whose solvability was never
	// confirmed before the generator ran out of tries.
	Degraded  bool  `json:"degraded,omitempty"`
	CreatedAt int64 `json:"createdAt,omitempty"`
	// Optional user metadata
	Name string `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Clues     int    `json:"clues"`
	CreatedAt int64  `json:"createdAt"`
}

// Task is a time interval competing for a resource. Intervals are
// half-open: [Start, End). Resource 0 means unassigned.
type Task struct {
	ID       int `json:"id"`
	Start    int `json:"start"`
	End      int `json:"end"`
	Resource int `json:"resource,omitempty"`
}

// Overlaps reports whether two half-open intervals intersect.
func (t Task) Overlaps(o Task) bool {
	return !(t.End <= o.Start || o.End <= t.Start)
}

// Item is a purchasable good. MaxQuantity 0 means unlimited.
type Item struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	MaxQuantity int     `json:"maxQuantity,omitempty"`
}

// ComboEntry records one purchased line of a combination.
type ComboEntry struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// Combination is one feasible purchase: every entry has Quantity > 0,
// TotalCost is within budget and TotalQuantity meets the minimum.
type Combination struct {
	Entries       []ComboEntry `json:"entries"`
	TotalCost     float64      `json:"totalCost"`
	TotalQuantity int          `json:"totalQuantity"`
}
