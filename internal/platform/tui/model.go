// Package tui provides the Bubble Tea integration for TEN!.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mamoru/ten/internal/core"
	"github.com/mamoru/ten/internal/games/ten"
	"github.com/mamoru/ten/internal/games/ten/gridfile"
	"github.com/mamoru/ten/internal/registry"
	"github.com/mamoru/ten/internal/storage"
)

// footerLines is the space below the game screen for status and hints.
const footerLines = 2

// QuicksaveName is the saved-board slot written by Ctrl+S.
const QuicksaveName = "quicksave"

// boardGame is implemented by games whose board can be stored and loaded.
type boardGame interface {
	registry.Game
	Board() *ten.Board
	Load(grid ten.Grid) bool
	Snapshot() ten.Snapshot
}

// Options configures a game session.
type Options struct {
	BoardPath string   // Snapshot file for Ctrl+S / Ctrl+O
	Initial   ten.Grid // Loaded into the board right after the first reset
	Source    string   // Where Initial came from, for the status line
}

// Outcome describes how a session ended.
type Outcome struct {
	Back  bool // The player asked to return to the menu
	Score int
}

// Model is the Bubble Tea model for a TEN! session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	gameState  core.GameState
	status     string
	statusErr  bool
	quitting   bool
	back       bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a model and starts the game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:      game,
		store:     store,
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())

	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()

	if opts.Initial != nil {
		source := opts.Source
		if source == "" {
			source = "initial board"
		}
		m.applyGrid(opts.Initial, nil, source)
	}

	return m
}

// gameHeight is the screen height left for the game.
func (m Model) gameHeight() int {
	return max(m.config.ScreenH-footerLines, 0)
}

// gameConfig is the runtime config as the game sees it.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

// Init implements tea.Model. The game is already running; there is no tick.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Every key press is one game step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.storeBoard()
		return m, nil
	case "ctrl+o":
		m.loadBoard()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.back = true
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}
		return m, nil
	}

	frame := core.NewInputFrame()
	frame.Set(action)
	result := m.game.Step(frame)
	m.gameState = result.State

	if result.Moved {
		m.setStatus("", false)
	}
	// Step ignores a new game request while paused or over
	if action == core.ActionNewGame && !m.gameState.GameOver && !m.gameState.Paused {
		m.scoreSaved = false
		m.setStatus("New game", false)
	}

	m.recordScore()
	return m, nil
}

// restart begins a fresh game with a new seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.setStatus("", false)
}

// recordScore saves the result once per finished game.
func (m *Model) recordScore() {
	if !m.gameState.GameOver || m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	entry := storage.ScoreEntry{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Won:    m.gameState.Won,
	}
	if bg, ok := m.game.(boardGame); ok {
		entry.Moves = bg.Snapshot().Moves
	}

	if _, err := m.store.SaveResult(entry); err != nil {
		m.setStatus(err.Error(), true)
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameHeight())

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, m.gameHeight())
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}
	m.gameState = m.game.State()

	return m, nil
}

// storeBoard writes the current board to the snapshot file and the
// quicksave slot.
func (m *Model) storeBoard() {
	bg, ok := m.game.(boardGame)
	if !ok {
		m.setStatus("This game has no board to save", true)
		return
	}
	if m.opts.BoardPath == "" {
		m.setStatus("No board file configured", true)
		return
	}

	grid := bg.Board().Grid()
	if err := gridfile.WriteFile(m.opts.BoardPath, grid); err != nil {
		m.setStatus(err.Error(), true)
		return
	}

	if m.store != nil {
		text := string(gridfile.Marshal(grid))
		if _, err := m.store.SaveBoard(QuicksaveName, grid.Size(), bg.Board().Score(), text); err != nil {
			m.setStatus(err.Error(), true)
			return
		}
	}

	m.setStatus("Board saved to "+m.opts.BoardPath, false)
}

// loadBoard replaces the board with the snapshot file's contents.
func (m *Model) loadBoard() {
	if m.opts.BoardPath == "" {
		m.setStatus("No board file configured", true)
		return
	}

	grid, invalid, err := gridfile.ReadFile(m.opts.BoardPath)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.applyGrid(grid, invalid, m.opts.BoardPath)
}

// applyGrid loads grid into the game and reports the result.
func (m *Model) applyGrid(grid ten.Grid, invalid []gridfile.CellError, source string) {
	bg, ok := m.game.(boardGame)
	if !ok {
		m.setStatus("This game cannot load boards", true)
		return
	}

	if !bg.Load(grid) {
		size := bg.Board().Size()
		m.setStatus(fmt.Sprintf("%s: %s does not fit a %dx%d board", source, describeShape(grid), size, size), true)
		return
	}

	m.gameState = m.game.State()
	m.scoreSaved = false

	msg := "Loaded " + source
	if len(invalid) > 0 {
		first := invalid[0]
		msg += fmt.Sprintf(" (%d unreadable cells, first at row %d cell %d)", len(invalid), first.Row, first.Col)
	}
	m.setStatus(msg, len(invalid) > 0)
}

// describeShape reports a decoded grid's dimensions.
func describeShape(g ten.Grid) string {
	if len(g) == 0 {
		return "an empty grid"
	}
	if !g.IsSquare() {
		return fmt.Sprintf("a ragged %d-row grid", len(g))
	}
	return fmt.Sprintf("a %dx%d grid", len(g), len(g))
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// Status returns the current status line and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	status := statusStyle.Render(m.status)
	if m.statusErr {
		status = errorStyle.Render(m.status)
	}

	hint := ""
	if h, ok := m.game.(registry.Hinter); ok {
		hint = hintStyle.Render(centerText(h.Controls(), m.config.ScreenW))
	}

	return RenderScreen(m.screen) + "\n" + status + "\n" + hint
}

// Run starts the Bubble Tea program for game and returns how it ended.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (Outcome, error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Outcome{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Outcome{}, nil
	}

	return Outcome{Back: m.back, Score: m.gameState.Score}, nil
}
