package ten

import (
	"math/rand"
	"time"
)

// Change is delivered to listeners after every successful mutation.
// Grid is a private copy; listeners may keep or modify it.
type Change struct {
	Grid  Grid
	Score int
}

// Listener receives board changes.
type Listener func(Change)

// Board owns a TEN! grid, its score and the random source used for spawns.
// A Board is not safe for concurrent use.
type Board struct {
	grid      Grid
	score     int
	rng       *rand.Rand
	listeners []Listener
}

// Option configures a Board at construction.
type Option func(*Board)

// WithSeed makes spawns reproducible.
func WithSeed(seed int64) Option {
	return func(b *Board) {
		b.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(b *Board) {
		if rng != nil {
			b.rng = rng
		}
	}
}

// WithListener registers a listener before the initial reset, so it also
// sees the opening board.
func WithListener(l Listener) Option {
	return func(b *Board) {
		if l != nil {
			b.listeners = append(b.listeners, l)
		}
	}
}

// NewBoard creates a size×size board (clamped up to MinSize) and deals the
// opening tiles.
func NewBoard(size int, opts ...Option) *Board {
	b := &Board{
		grid: NewGrid(max(size, MinSize)),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	b.Reset()
	return b
}

// OnChange registers an additional listener.
func (b *Board) OnChange(l Listener) {
	if l != nil {
		b.listeners = append(b.listeners, l)
	}
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return len(b.grid)
}

// Score returns the score of the current grid.
func (b *Board) Score() int {
	return b.score
}

// Grid returns a copy of the current grid.
func (b *Board) Grid() Grid {
	return b.grid.Clone()
}

// Reset empties the board and places two tier-0 tiles on distinct random
// cells.
func (b *Board) Reset() {
	for _, row := range b.grid {
		for col := range row {
			row[col] = Empty
		}
	}

	n := len(b.grid)
	for placed := 0; placed < 2; {
		col := b.rng.Intn(n)
		row := b.rng.Intn(n)
		if b.grid[row][col] == Empty {
			b.grid[row][col] = 0
			placed++
		}
	}

	b.changed()
}

// Set replaces the grid with a copy of g. Grids that are nil or not exactly
// Size()×Size() are ignored and Set returns false. Cell values are taken
// as they are.
func (b *Board) Set(g Grid) bool {
	if g == nil || len(g) != len(b.grid) || !g.IsSquare() {
		return false
	}

	b.grid = g.Clone()
	b.changed()
	return true
}

// Move pushes every line toward dir, merging tiers, and spawns one tier-0
// tile at the trailing edge of a random line that changed. It returns false
// and leaves the board untouched when nothing can move that way.
func (b *Board) Move(dir Direction) bool {
	if !dir.Valid() {
		return false
	}

	o := orientations[dir]
	o.forward(b.grid)
	changedRows := compact(b.grid)
	if len(changedRows) > 0 {
		line := changedRows[b.rng.Intn(len(changedRows))]
		if b.grid[line][0] == Empty {
			b.grid[line][0] = 0
		}
	}
	o.inverse(b.grid)

	if len(changedRows) == 0 {
		return false
	}

	b.changed()
	return true
}

// CanMove reports whether Move(dir) would change the board. It works on a
// copy and does not touch the random source.
func (b *Board) CanMove(dir Direction) bool {
	if !dir.Valid() {
		return false
	}

	g := b.grid.Clone()
	o := orientations[dir]
	o.forward(g)
	return len(compact(g)) > 0
}

// Stuck reports whether no direction can move.
func (b *Board) Stuck() bool {
	for _, dir := range Directions() {
		if b.CanMove(dir) {
			return false
		}
	}
	return true
}

// changed recomputes the score and notifies listeners.
func (b *Board) changed() {
	b.score = Score(b.grid)

	for _, l := range b.listeners {
		l(Change{Grid: b.grid.Clone(), Score: b.score})
	}
}
