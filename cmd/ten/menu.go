package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mamoru/ten/internal/core"
	"github.com/mamoru/ten/internal/games/ten/gridfile"
	"github.com/mamoru/ten/internal/platform/tui"
	"github.com/mamoru/ten/internal/registry"
	"github.com/mamoru/ten/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive variant picker",
	Long: `Open an interactive menu to pick a variant, browse high scores or
resume a saved board.

Controls:
  Up/Down   Navigate
  Enter     Play
  Tab       Scoreboard
  O         Saved boards
  Q / Esc   Quit`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			os.Exit(1)
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return

		case result.WantsScoreboard:
			if store == nil {
				logger.Warn("scoreboard unavailable without a database")
				continue
			}
			goBack, err := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
				os.Exit(1)
			}
			if !goBack {
				return
			}
			continue

		case result.WantsBoards:
			if store == nil {
				logger.Warn("saved boards unavailable without a database")
				continue
			}
			selected, back, err := tui.RunBoards(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running saved boards: %v\n", err)
				os.Exit(1)
			}
			if selected == nil {
				if back {
					continue
				}
				return
			}
			if !playSaved(store, selected, cfg) {
				return
			}
			continue
		}

		if !playVariant(store, result.GameID, cfg, tui.Options{}) {
			return
		}
	}
}

// playVariant runs one game and reports whether to return to the menu.
func playVariant(store *storage.Store, gameID string, cfg core.RuntimeConfig, opts tui.Options) bool {
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Each game from the menu gets its own seed unless one was pinned
	if appCfg.Gameplay.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	opts.BoardPath = appCfg.Files.BoardPath

	logger.Debug("starting game", "variant", gameID, "size", cfg.BoardSize, "seed", cfg.Seed)

	outcome, err := tui.Run(game, store, cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	return outcome.Back
}

// playSaved resumes a board from the database on the plain variant sized to
// match it.
func playSaved(store *storage.Store, saved *storage.SavedBoard, cfg core.RuntimeConfig) bool {
	grid, invalid := gridfile.Unmarshal([]byte(saved.Grid))
	for _, e := range invalid {
		logger.Warn("unreadable cell", "board", saved.Name, "row", e.Row, "col", e.Col, "token", e.Token)
	}

	cfg.BoardSize = saved.Size
	return playVariant(store, "ten", cfg, tui.Options{
		Initial: grid,
		Source:  saved.Name,
	})
}
