// ten is a terminal TEN! game: slide the board, merge equal tiers and try
// to build a tile above tier nine.
//
// Usage:
//
//	ten list                 - List board variants
//	ten play [variant]       - Play a variant (default: ten)
//	ten menu                 - Pick variants, scores and saved boards interactively
//	ten scores [variant]     - Show high scores for a variant
//	ten board <command>      - Create, move, score and store board files
//	ten config [init]        - Show or write the effective configuration
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible games
//	--db <path>      - Set database path (default: ~/.ten/scores.db)
//	--config <path>  - Use a specific config file
//	--size <n>       - Board side length for the "ten" variant
//	--debug          - Verbose logging
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mamoru/ten/internal/config"
	"github.com/mamoru/ten/internal/core"
	"github.com/mamoru/ten/internal/storage"

	// Register board variants
	_ "github.com/mamoru/ten/internal/games/ten"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagSize   int
	flagDebug  bool

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "ten"})
	appCfg = config.DefaultTenConfig()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ten",
	Short: "TEN! - merge tiers up to ten in your terminal",
	Long: `TEN! is a sliding-tile puzzle. Every move pushes all tiles toward one
side; two equal tiers merge into the next tier. The score is the two
highest tiers on the board (7 and 3 read as 7.3), and merging two tier-9
tiles scores a perfect 10.0.

Available commands:
  list     - Show all board variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  scores   - View high scores
  board    - Work with board snapshot files
  config   - Show or write the configuration

Examples:
  ten play
  ten play ten_6x6
  ten play --size 5 --seed 42
  ten menu
  ten board new --out board.txt
  ten board move left up --in board.txt`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config: ~/.ten/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board side length for the ten variant (minimum 4)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
}

// setup loads configuration and applies flag overrides.
func setup(cmd *cobra.Command, _ []string) error {
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadTen(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Board.Size = flagSize
	}
	if flags.Changed("seed") {
		cfg.Gameplay.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	cfg.Normalize()
	appCfg = cfg

	logger.Debug("configuration loaded",
		"size", cfg.Board.Size,
		"win_score", cfg.Gameplay.WinScore,
		"seed", cfg.Gameplay.Seed,
		"db", cfg.Storage.DBPath,
		"board_file", cfg.Files.BoardPath,
	)
	return nil
}

// runtimeConfig builds the game runtime config from the terminal size and
// the loaded configuration.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		BoardSize: appCfg.Board.Size,
		WinScore:  appCfg.Gameplay.WinScore,
		Seed:      appCfg.Gameplay.Seed,
	}
}

// seed returns the configured seed, or a time-based one when unset.
func seed() int64 {
	if appCfg.Gameplay.Seed != 0 {
		return appCfg.Gameplay.Seed
	}
	return time.Now().UnixNano()
}

// openStore opens the score database. Games still work without it, so a
// failure is only a warning.
func openStore() *storage.Store {
	store, err := storage.Open(appCfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", appCfg.Storage.DBPath, "err", err)
		return nil
	}
	return store
}

// mustOpenStore opens the score database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(appCfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}
