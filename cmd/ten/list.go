package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mamoru/ten/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  "Display a list of all registered board variants with their IDs and titles.",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()
	for _, g := range games {
		fmt.Printf("  %-12s %s\n", g.ID, g.Title)
	}
	fmt.Println()
	fmt.Println("Run 'ten play <variant>' to start.")
}
