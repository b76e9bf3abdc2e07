package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mamoru/ten/internal/games/ten"
	"github.com/mamoru/ten/internal/games/ten/gridfile"
	"github.com/mamoru/ten/internal/platform/tui"
	"github.com/mamoru/ten/internal/registry"
)

var (
	flagLoadFile  string
	flagLoadBoard string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start a TEN! game directly in the terminal.

The variant defaults to "ten", whose size follows --size or the config file.
Use --load to start from a snapshot file, or --board to start from a board
stored with 'ten board save'.

Controls:
  Arrows / WASD / hjkl  Slide tiles
  N                     New game
  P                     Pause
  Ctrl+S / Ctrl+O       Save / load the board file
  R                     Restart after game over
  Esc / B               Back (when paused or over)
  Q                     Quit`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLoadFile, "load", "", "Start from a board snapshot file")
	playCmd.Flags().StringVar(&flagLoadBoard, "board", "", "Start from a saved board by name")
	playCmd.MarkFlagsMutuallyExclusive("load", "board")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "ten"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'ten list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{BoardPath: appCfg.Files.BoardPath}
	switch {
	case flagLoadFile != "":
		grid, err := readGrid(flagLoadFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Initial = grid
		opts.Source = flagLoadFile

	case flagLoadBoard != "":
		if store == nil {
			fmt.Fprintln(os.Stderr, "Error: saved boards need the scores database")
			os.Exit(1)
		}
		grid, err := storedGrid(store, flagLoadBoard)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Initial = grid
		opts.Source = flagLoadBoard
	}

	cfg := runtimeConfig()
	if opts.Initial != nil && gameID == "ten" && opts.Initial.IsSquare() {
		// The plain variant takes its size from the board being loaded
		cfg.BoardSize = opts.Initial.Size()
	}

	logger.Debug("starting game", "variant", gameID, "size", cfg.BoardSize, "seed", cfg.Seed)

	outcome, err := tui.Run(game, store, cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	if outcome.Score > 0 {
		fmt.Printf("Final score: %s\n", ten.Display(outcome.Score).StringFixed(1))
	}
}

// readGrid reads a snapshot file, or stdin for "-", and logs unreadable cells.
func readGrid(path string) (ten.Grid, error) {
	var (
		grid    ten.Grid
		invalid []gridfile.CellError
		err     error
	)
	if path == "-" {
		grid, invalid, err = gridfile.Decode(os.Stdin)
	} else {
		grid, invalid, err = gridfile.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	for _, e := range invalid {
		logger.Warn("unreadable cell", "source", path, "row", e.Row, "col", e.Col, "token", e.Token)
	}
	return grid, nil
}
