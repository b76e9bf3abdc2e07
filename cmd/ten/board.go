package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mamoru/ten/internal/games/ten"
	"github.com/mamoru/ten/internal/games/ten/gridfile"
	"github.com/mamoru/ten/internal/storage"
)

var (
	flagBoardIn  string
	flagBoardOut string
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Create, move, score and store board files",
	Long: `Work with board snapshot files outside the game.

A snapshot file has one line per row and one integer per cell separated by
spaces. -1 is an empty cell and 0..9 are tiers. Unreadable cells load as -2.
Use "-" as a file name for stdin or stdout.`,
}

var boardNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Write a fresh opening board",
	Args:  cobra.NoArgs,
	Run:   runBoardNew,
}

var boardMoveCmd = &cobra.Command{
	Use:   "move <direction>...",
	Short: "Apply moves to a board file",
	Long: `Apply one or more moves to a board file and write the result back.
Directions are north, east, south, west or up, right, down, left.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runBoardMove,
}

var boardScoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Print the score of a board file",
	Args:  cobra.MaximumNArgs(1),
	Run:   runBoardScore,
}

var boardSaveCmd = &cobra.Command{
	Use:   "save <name> [file]",
	Short: "Store a board file in the database",
	Args:  cobra.RangeArgs(1, 2),
	Run:   runBoardSave,
}

var boardLoadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Write a stored board to a file",
	Args:  cobra.ExactArgs(1),
	Run:   runBoardLoad,
}

var boardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored boards",
	Args:  cobra.NoArgs,
	Run:   runBoardList,
}

var boardDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored board",
	Args:  cobra.ExactArgs(1),
	Run:   runBoardDelete,
}

func init() {
	boardNewCmd.Flags().StringVarP(&flagBoardOut, "out", "o", "", "Output file (default from config, - for stdout)")
	boardMoveCmd.Flags().StringVarP(&flagBoardIn, "in", "i", "", "Input file (default from config, - for stdin)")
	boardMoveCmd.Flags().StringVarP(&flagBoardOut, "out", "o", "", "Output file (default: the input file)")
	boardLoadCmd.Flags().StringVarP(&flagBoardOut, "out", "o", "", "Output file (default from config, - for stdout)")

	boardCmd.AddCommand(boardNewCmd)
	boardCmd.AddCommand(boardMoveCmd)
	boardCmd.AddCommand(boardScoreCmd)
	boardCmd.AddCommand(boardSaveCmd)
	boardCmd.AddCommand(boardLoadCmd)
	boardCmd.AddCommand(boardListCmd)
	boardCmd.AddCommand(boardDeleteCmd)
}

func runBoardNew(cmd *cobra.Command, args []string) {
	board := ten.NewBoard(appCfg.Board.Size, ten.WithSeed(seed()))

	out := pathOr(flagBoardOut, appCfg.Files.BoardPath)
	if err := writeGrid(out, board.Grid()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("new board written", "path", out, "size", board.Size())
}

func runBoardMove(cmd *cobra.Command, args []string) {
	dirs := make([]ten.Direction, 0, len(args))
	for _, arg := range args {
		dir, ok := ten.ParseDirection(arg)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown direction %q\n", arg)
			os.Exit(1)
		}
		dirs = append(dirs, dir)
	}

	in := pathOr(flagBoardIn, appCfg.Files.BoardPath)
	board := loadBoardFile(in)

	for _, dir := range dirs {
		if board.Move(dir) {
			logger.Debug("moved", "direction", dir, "score", board.Score())
		} else {
			logger.Info("move changed nothing", "direction", dir)
		}
	}

	out := pathOr(flagBoardOut, in)
	if err := writeGrid(out, board.Grid()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if out != "-" {
		printBoard(board)
	}
}

func runBoardScore(cmd *cobra.Command, args []string) {
	in := appCfg.Files.BoardPath
	if len(args) > 0 {
		in = args[0]
	}

	grid, err := readGrid(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Score works on any shape, so a ragged file still gets one
	fmt.Println(ten.Display(ten.Score(grid)).StringFixed(1))
}

func runBoardSave(cmd *cobra.Command, args []string) {
	name := args[0]
	in := appCfg.Files.BoardPath
	if len(args) > 1 {
		in = args[1]
	}

	board := loadBoardFile(in)

	store := mustOpenStore()
	defer store.Close()

	grid := board.Grid()
	id, err := store.SaveBoard(name, board.Size(), board.Score(), string(gridfile.Marshal(grid)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %q (%s)\n", name, id)
}

func runBoardLoad(cmd *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	grid, err := storedGrid(store, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := pathOr(flagBoardOut, appCfg.Files.BoardPath)
	if err := writeGrid(out, grid); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("board restored", "name", args[0], "path", out)
}

func runBoardList(cmd *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	boards, err := store.ListBoards()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(boards) == 0 {
		fmt.Println("No saved boards.")
		return
	}

	fmt.Printf("  %-16s  %-5s  %-6s  %s\n", "Name", "Size", "Score", "Updated")
	for _, b := range boards {
		fmt.Printf("  %-16s  %-5s  %-6s  %s\n",
			b.Name,
			fmt.Sprintf("%dx%d", b.Size, b.Size),
			ten.Display(b.Score).StringFixed(1),
			b.UpdatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
}

func runBoardDelete(cmd *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	removed, err := store.DeleteBoard(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !removed {
		fmt.Fprintf(os.Stderr, "Error: no saved board named %q\n", args[0])
		os.Exit(1)
	}
	fmt.Printf("Deleted %q\n", args[0])
}

// loadBoardFile reads a snapshot file into a board sized to match it.
func loadBoardFile(path string) *ten.Board {
	grid, err := readGrid(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	board := ten.NewBoard(grid.Size(), ten.WithSeed(seed()))
	if !board.Set(grid) {
		fmt.Fprintf(os.Stderr, "Error: %s is not a square board of at least %dx%d\n", path, ten.MinSize, ten.MinSize)
		os.Exit(1)
	}
	return board
}

// storedGrid decodes a board saved in the database.
func storedGrid(store *storage.Store, name string) (ten.Grid, error) {
	saved, err := store.LoadBoard(name)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, fmt.Errorf("no saved board named %q", name)
	}

	grid, invalid := gridfile.Unmarshal([]byte(saved.Grid))
	for _, e := range invalid {
		logger.Warn("unreadable cell", "board", name, "row", e.Row, "col", e.Col, "token", e.Token)
	}
	return grid, nil
}

// writeGrid writes grid to path, or stdout for "-".
func writeGrid(path string, grid ten.Grid) error {
	if path == "-" {
		return gridfile.Encode(os.Stdout, grid)
	}
	return gridfile.WriteFile(path, grid)
}

func pathOr(path, fallback string) string {
	if path != "" {
		return path
	}
	return fallback
}

// printBoard shows a board as aligned columns with its score.
func printBoard(b *ten.Board) {
	var sb strings.Builder
	for _, row := range b.Grid() {
		for i, v := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			switch v {
			case ten.Empty:
				sb.WriteString(" .")
			case ten.Corrupt:
				sb.WriteString(" ?")
			default:
				fmt.Fprintf(&sb, "%2d", v)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
	fmt.Println(boardSummary(b))
}

// boardSummary reports the score and whether any move is left.
func boardSummary(b *ten.Board) string {
	summary := "Score: " + ten.Display(b.Score()).StringFixed(1)
	if b.Stuck() {
		summary += " (no moves left)"
	}
	return summary
}
