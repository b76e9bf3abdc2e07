package ten

import (
	"fmt"

	"github.com/mamoru/ten/internal/core"
	"github.com/mamoru/ten/internal/registry"
)

// Game adapts a Board to the platform's registry.Game interface.
type Game struct {
	id        string
	title     string
	fixedSize int // 0 means take the size from RuntimeConfig
	board     *Board
	listeners []Listener
	tick      uint64
	moves     int
	winScore  int

	// exhausted[d] is set once a move toward d failed; any successful move
	// clears all of them. All four set means the game is over.
	exhausted [4]bool

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a game whose board size comes from the runtime config.
func New() *Game {
	return &Game{
		id:    "ten",
		title: "TEN!",
	}
}

// NewSized creates a game variant with a fixed board size.
func NewSized(size int) *Game {
	size = max(size, MinSize)
	return &Game{
		id:        fmt.Sprintf("ten_%dx%d", size, size),
		title:     fmt.Sprintf("TEN! %dx%d", size, size),
		fixedSize: size,
	}
}

func init() {
	registry.Register("ten", func() registry.Game {
		return New()
	})
	registry.Register("ten_5x5", func() registry.Game {
		return NewSized(5)
	})
	registry.Register("ten_6x6", func() registry.Game {
		return NewSized(6)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// OnChange registers a listener on the current and every future board.
func (g *Game) OnChange(l Listener) {
	if l == nil {
		return
	}
	g.listeners = append(g.listeners, l)
	if g.board != nil {
		g.board.OnChange(l)
	}
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	size := g.fixedSize
	if size == 0 {
		size = cfg.BoardSize
	}
	if size == 0 {
		size = DefaultSize
	}

	opts := []Option{WithSeed(cfg.Seed)}
	for _, l := range g.listeners {
		opts = append(opts, WithListener(l))
	}

	g.winScore = cfg.WinScore
	if g.winScore <= 0 || g.winScore > WinScore {
		g.winScore = WinScore
	}

	g.board = NewBoard(size, opts...)
	g.tick = 0
	g.moves = 0
	g.exhausted = [4]bool{}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.won = false
	g.paused = false

	g.checkScreenSize()
}

// Board exposes the engine for the load/store collaborators.
func (g *Game) Board() *Board {
	return g.board
}

// Load replaces the board with a stored grid. Grids of the wrong shape are
// rejected and the current game continues untouched.
func (g *Game) Load(grid Grid) bool {
	if g.board == nil || !g.board.Set(grid) {
		return false
	}

	g.exhausted = [4]bool{}
	g.gameOver = false
	g.won = false
	return true
}

// Exhausted reports whether the last attempt toward dir failed.
func (g *Game) Exhausted(dir Direction) bool {
	return dir.Valid() && g.exhausted[dir]
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	w, h := g.layoutSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.board == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart after game over is driven by the platform
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionNewGame) {
		g.board.Reset()
		g.moves = 0
		g.exhausted = [4]bool{}
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved := g.processMove(dir)
	return core.StepResult{State: g.State(), Moved: moved}
}

// directionFor maps the first directional action in the frame.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return North, true
	case in.Has(core.ActionDown):
		return South, true
	case in.Has(core.ActionLeft):
		return West, true
	case in.Has(core.ActionRight):
		return East, true
	}
	return 0, false
}

// processMove handles a move in the given direction.
func (g *Game) processMove(dir Direction) bool {
	if g.exhausted[dir] {
		return false
	}

	if !g.board.Move(dir) {
		g.exhausted[dir] = true
		if g.allExhausted() {
			g.gameOver = true
		}
		return false
	}

	g.moves++
	g.exhausted = [4]bool{}
	if g.board.Score() >= g.winScore {
		g.won = true
	}
	return true
}

func (g *Game) allExhausted() bool {
	for _, e := range g.exhausted {
		if !e {
			return false
		}
	}
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.board != nil {
		score = g.board.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall,
	}
}
