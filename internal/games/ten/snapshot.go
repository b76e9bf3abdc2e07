package ten

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Size      int
	Grid      Grid
	Score     int
	Moves     int
	MaxTile   int
	Exhausted []Direction
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	var exhausted []Direction
	for _, dir := range Directions() {
		if g.exhausted[dir] {
			exhausted = append(exhausted, dir)
		}
	}

	snap := Snapshot{
		Tick:      g.tick,
		Moves:     g.moves,
		MaxTile:   Empty,
		Exhausted: exhausted,
		State:     state,
	}
	if g.board != nil {
		snap.Size = g.board.Size()
		snap.Grid = g.board.Grid()
		snap.Score = g.board.Score()
		snap.MaxTile = snap.Grid.MaxTile()
	}
	return snap
}
