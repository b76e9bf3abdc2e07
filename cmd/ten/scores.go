package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mamoru/ten/internal/games/ten"
	"github.com/mamoru/ten/internal/registry"
	"github.com/mamoru/ten/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the high scores for a variant, or a summary of every variant
when none is given.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagScoresAll, "all", "a", false, "Show every recorded score")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a variant")
			os.Exit(1)
		}
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		os.Exit(1)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "variant", gameID)
		return
	}

	var (
		scores []storage.ScoreEntry
		err    error
	)
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching scores: %v\n", err)
		os.Exit(1)
	}

	if len(scores) == 0 {
		fmt.Printf("No scores recorded for %s yet.\n", gameID)
		return
	}

	fmt.Printf("High scores for %s:\n\n", gameID)
	fmt.Printf("  %-4s  %-6s  %-6s  %-4s  %s\n", "#", "Score", "Moves", "Won", "Date")
	for i, s := range scores {
		won := ""
		if s.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-6s  %-6d  %-4s  %s\n",
			i+1,
			ten.Display(s.Score).StringFixed(1),
			s.Moves,
			won,
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}
	fmt.Printf("\n  %d games, %d won, average %s\n",
		stats.GamesCount,
		stats.Wins,
		decimal.NewFromFloat(stats.AvgScore).Shift(-1).StringFixed(1),
	)
}

// printSummary shows the best score of every variant that has been played.
func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No games played yet.")
		return
	}

	fmt.Printf("  %-12s  %-6s  %-6s  %s\n", "Variant", "Best", "Games", "Won")
	for _, g := range registry.List() {
		s, ok := all[g.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-12s  %-6s  %-6d  %d\n",
			g.ID,
			ten.Display(s.HighScore).StringFixed(1),
			s.GamesCount,
			s.Wins,
		)
	}
}
