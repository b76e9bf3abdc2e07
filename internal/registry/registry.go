// Package registry maps variant IDs to game factories.
// Variants register themselves in init(), so the CLI and the TUI can list
// and start them without importing each game package by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mamoru/ten/internal/core"
)

// Game is what the platform drives. Implementations hold pure game logic
// and never import Bubble Tea; input arrives as abstract actions and output
// goes into a core.Screen.
type Game interface {
	// ID is the variant identifier used on the command line and as the
	// score table key (e.g. "ten", "ten_5x5").
	ID() string

	// Title is the human-readable name.
	Title() string

	// Reset starts a fresh game using the board size, screen size and seed
	// from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step applies one batch of input. The platform calls it once per key
	// press; games are turn based and do not advance on their own.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score and the game over / won / paused flags.
	State() core.GameState
}

// Resizer is implemented by games that react to terminal resizes without
// a reset.
type Resizer interface {
	Resize(w, h int)
}

// Hinter is implemented by games that describe their key bindings.
type Hinter interface {
	Controls() string
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id. It panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered variants sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates the variant registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
