// Package ten implements the TEN! sliding-tile puzzle: a 2048-style board
// where equal tiers merge into the next tier and the score is read off the
// two highest tiers on the board.
package ten

// Cell sentinels and limits.
const (
	// Empty marks a cell without a tile.
	Empty = -1

	// Corrupt marks a cell whose stored value could not be read.
	Corrupt = -2

	// MaxTier is the highest regular tier. Merging two MaxTier tiles wins.
	MaxTier = 9

	// MinSize is the smallest board side; smaller requests are clamped up.
	MinSize = 4

	// DefaultSize is the classic 4x4 board.
	DefaultSize = 4
)

// Grid is a square matrix of cell values indexed as grid[row][column].
type Grid [][]int

// NewGrid returns a size×size grid with every cell Empty.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for row := range g {
		g[row] = make([]int, size)
		for col := range g[row] {
			g[row][col] = Empty
		}
	}
	return g
}

// Size returns the number of rows.
func (g Grid) Size() int {
	return len(g)
}

// IsSquare reports whether every row is as long as the grid is tall.
func (g Grid) IsSquare() bool {
	for _, row := range g {
		if len(row) != len(g) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy. A nil grid clones to nil.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	c := make(Grid, len(g))
	for row := range g {
		c[row] = append([]int(nil), g[row]...)
	}
	return c
}

// Equal reports whether both grids have the same shape and values.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for row := range g {
		if len(g[row]) != len(other[row]) {
			return false
		}
		for col := range g[row] {
			if g[row][col] != other[row][col] {
				return false
			}
		}
	}
	return true
}

// Count returns how many cells hold the given value.
func (g Grid) Count(value int) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v == value {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the highest value on the grid, or Empty if it has no tiles.
func (g Grid) MaxTile() int {
	maxVal := Empty
	for _, row := range g {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}
