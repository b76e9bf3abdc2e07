package ten

// Direction is one of the four ways the board can be pushed.
//
// Every direction is the same east-ward compaction seen through a
// different orientation: the board is transformed so the requested side
// becomes east, compacted, and transformed back.
type Direction int

const (
	East Direction = iota
	South
	West
	North
)

// transform is an in-place reorientation of a square grid.
type transform func(Grid)

// orientation pairs a pre-transform with its exact inverse.
type orientation struct {
	name    string
	forward transform
	inverse transform
}

var orientations = [...]orientation{
	East:  {name: "east", forward: identity, inverse: identity},
	South: {name: "south", forward: rotateCounterClockwise, inverse: rotateClockwise},
	West:  {name: "west", forward: mirror, inverse: mirror},
	North: {name: "north", forward: rotateClockwise, inverse: rotateCounterClockwise},
}

// Directions returns all four directions in their canonical order.
func Directions() []Direction {
	return []Direction{East, South, West, North}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= East && d <= North
}

// String returns the lowercase compass name.
func (d Direction) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return orientations[d].name
}

// ParseDirection accepts compass names and the arrow aliases up/down/left/right.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "east", "e", "right":
		return East, true
	case "south", "s", "down":
		return South, true
	case "west", "w", "left":
		return West, true
	case "north", "n", "up":
		return North, true
	default:
		return 0, false
	}
}

func identity(Grid) {}

// mirror reverses every row.
func mirror(g Grid) {
	for _, row := range g {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// rotateClockwise rotates the grid a quarter turn clockwise, one ring at a
// time, cycling four cells per step.
func rotateClockwise(g Grid) {
	n := len(g)
	for layer := 0; layer < n/2; layer++ {
		for i := layer; i < n-layer-1; i++ {
			tmp := g[layer][i]
			g[layer][i] = g[n-i-1][layer]
			g[n-i-1][layer] = g[n-layer-1][n-i-1]
			g[n-layer-1][n-i-1] = g[i][n-layer-1]
			g[i][n-layer-1] = tmp
		}
	}
}

// rotateCounterClockwise is the inverse of rotateClockwise.
func rotateCounterClockwise(g Grid) {
	n := len(g)
	for layer := 0; layer < n/2; layer++ {
		for i := layer; i < n-layer-1; i++ {
			tmp := g[layer][i]
			g[layer][i] = g[i][n-layer-1]
			g[i][n-layer-1] = g[n-layer-1][n-i-1]
			g[n-layer-1][n-i-1] = g[n-i-1][layer]
			g[n-i-1][layer] = tmp
		}
	}
}
