package ten

import (
	"strings"
	"testing"

	"github.com/mamoru/ten/internal/core"
	"github.com/mamoru/ten/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		BoardSize: 4,
		Seed:      seed,
	}
}

func press(g *Game, a core.Action) core.StepResult {
	in := core.NewInputFrame()
	in.Set(a)
	return g.Step(in)
}

var stuckGrid = Grid{
	{0, 1, 0, 1},
	{1, 0, 1, 0},
	{0, 1, 0, 1},
	{1, 0, 1, 0},
}

func TestRegisteredVariants(t *testing.T) {
	for _, id := range []string{"ten", "ten_5x5", "ten_6x6"} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
		}
	}

	g, err := registry.Create("ten_5x5")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g.Reset(testConfig(1))
	if size := g.(*Game).Board().Size(); size != 5 {
		t.Errorf("ten_5x5 board size = %d, want 5", size)
	}
}

func TestResetUsesConfigSize(t *testing.T) {
	cfg := testConfig(1)
	cfg.BoardSize = 6

	g := New()
	g.Reset(cfg)
	if size := g.Board().Size(); size != 6 {
		t.Errorf("board size = %d, want 6", size)
	}

	cfg.BoardSize = 0
	g.Reset(cfg)
	if size := g.Board().Size(); size != DefaultSize {
		t.Errorf("board size with no config = %d, want %d", size, DefaultSize)
	}
}

func TestDirectionMapping(t *testing.T) {
	tests := []struct {
		action core.Action
		want   []int // first row after the move
	}{
		{core.ActionRight, []int{0, -1, -1, 1}},
		{core.ActionLeft, []int{1, -1, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			g := New()
			g.Reset(testConfig(3))
			g.Load(gridWithRow(4, 0, 0, -1, -1))

			res := press(g, tt.action)
			if !res.Moved {
				t.Fatal("expected the move to succeed")
			}
			row := g.Board().Grid()[0]
			for i := range tt.want {
				if row[i] != tt.want[i] {
					t.Fatalf("row = %v, want %v", row, tt.want)
				}
			}
		})
	}

	g := New()
	g.Reset(testConfig(3))
	g.Load(Grid{
		{0, -1, -1, -1},
		{0, -1, -1, -1},
		{-1, -1, -1, -1},
		{-1, -1, -1, -1},
	})
	press(g, core.ActionUp)
	if got := g.Board().Grid()[0][0]; got != 1 {
		t.Errorf("ActionUp: top-left = %d, want 1", got)
	}
}

func TestGameOverWhenAllDirectionsExhausted(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	if !g.Load(stuckGrid) {
		t.Fatal("Load rejected a valid grid")
	}

	actions := []core.Action{core.ActionRight, core.ActionRight, core.ActionDown, core.ActionLeft}
	for _, a := range actions {
		res := press(g, a)
		if res.Moved {
			t.Fatalf("%s moved a stuck board", a)
		}
		if res.State.GameOver {
			t.Fatalf("game over after %s, before every direction was tried", a)
		}
	}

	res := press(g, core.ActionUp)
	if !res.State.GameOver {
		t.Error("expected game over after all four directions failed")
	}
	if res.State.Won {
		t.Error("stuck board should not be a win")
	}
	if snap := g.Snapshot(); snap.State != StateGameOver || len(snap.Exhausted) != 4 {
		t.Errorf("snapshot = %+v, want game_over with 4 exhausted", snap)
	}
}

func TestSuccessfulMoveClearsExhausted(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	g.Load(gridWithRow(4, -1, -1, -1, 0))

	press(g, core.ActionRight)
	if !g.Exhausted(East) {
		t.Fatal("east should be exhausted")
	}

	if res := press(g, core.ActionLeft); !res.Moved {
		t.Fatal("left should move")
	}
	if g.Exhausted(East) {
		t.Error("successful move should clear exhausted directions")
	}
}

func TestWinOnTopMerge(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	g.Load(gridWithRow(4, 9, 9, -1, -1))

	res := press(g, core.ActionRight)
	if !res.State.Won || !res.State.GameOver {
		t.Errorf("state = %+v, want won", res.State)
	}
	if res.State.Score != WinScore {
		t.Errorf("score = %d, want %d", res.State.Score, WinScore)
	}

	// Further input is ignored until restart
	before := g.Board().Grid()
	press(g, core.ActionLeft)
	if !g.Board().Grid().Equal(before) {
		t.Error("board moved after the game was won")
	}
}

func TestLoadRejectsWrongSize(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	before := g.Board().Grid()

	if g.Load(NewGrid(5)) {
		t.Error("Load accepted a 5x5 grid on a 4x4 board")
	}
	if !g.Board().Grid().Equal(before) {
		t.Error("rejected Load changed the board")
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	g.Load(gridWithRow(4, 0, -1, -1, -1))

	press(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}
	if res := press(g, core.ActionRight); res.Moved {
		t.Error("moved while paused")
	}

	press(g, core.ActionPause)
	if res := press(g, core.ActionRight); !res.Moved {
		t.Error("move after unpause should succeed")
	}
}

func TestNewGameAction(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	g.Load(gridWithRow(4, 5, 4, -1, -1))

	press(g, core.ActionNewGame)
	grid := g.Board().Grid()
	if grid.Count(0) != 2 || grid.Count(Empty) != 14 {
		t.Errorf("new game board:\n%v", grid)
	}
	if g.Snapshot().Moves != 0 {
		t.Error("moves should reset on new game")
	}
}

func TestScreenTooSmall(t *testing.T) {
	cfg := testConfig(1)
	cfg.ScreenW = 10
	cfg.ScreenH = 5

	g := New()
	g.Reset(cfg)
	if !g.State().Paused {
		t.Error("tiny screen should pause the game")
	}
	if snap := g.Snapshot(); snap.State != StatePausedSmall {
		t.Errorf("state = %s, want %s", snap.State, StatePausedSmall)
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("resize to a normal screen should unpause")
	}
}

func TestDeterministicReplay(t *testing.T) {
	inputs := []core.Action{
		core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionUp,
		core.ActionRight, core.ActionRight, core.ActionDown, core.ActionLeft,
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(2024))
		for _, a := range inputs {
			press(g, a)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !a.Grid.Equal(b.Grid) || a.Score != b.Score || a.Moves != b.Moves || a.Tick != b.Tick {
		t.Errorf("replays diverged:\n%+v\n%+v", a, b)
	}
}

func TestOnChangeSurvivesReset(t *testing.T) {
	var changes int
	g := New()
	g.OnChange(func(Change) { changes++ })

	g.Reset(testConfig(1))
	if changes != 1 {
		t.Fatalf("changes after Reset = %d, want 1", changes)
	}

	g.Reset(testConfig(2))
	if changes != 2 {
		t.Errorf("changes after second Reset = %d, want 2", changes)
	}
}

func TestRenderShowsScore(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.Load(gridWithRow(4, 7, 3, -1, -1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 7.3") {
		t.Errorf("render missing score:\n%s", out)
	}
	if !strings.Contains(out, "TEN!") {
		t.Errorf("render missing title:\n%s", out)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.Load(stuckGrid)
	for _, a := range []core.Action{core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionUp} {
		press(g, a)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Errorf("render missing game over overlay:\n%s", screen.String())
	}
}

func TestCustomWinScore(t *testing.T) {
	cfg := testConfig(42)
	cfg.WinScore = 50

	g := New()
	g.Reset(cfg)
	g.Load(gridWithRow(4, 4, 4, -1, -1))

	res := press(g, core.ActionRight)
	if res.State.Score != 50 {
		t.Fatalf("score = %d, want 50", res.State.Score)
	}
	if !res.State.Won {
		t.Error("reaching the configured win score should win")
	}
}
