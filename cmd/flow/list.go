package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Long: `Shows every level grouped by board size. Solved levels are marked
with a check for the current player.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	a, err := loadApp(false)
	exitOnError("loading levels", err)
	defer a.Close()

	groups := a.catalog.Groups()
	if len(groups) == 0 {
		fmt.Println("No levels available.")
		return
	}

	solved := map[string]bool{}
	if store, err := a.openStore(); err != nil {
		a.logger.Warn("could not open progress database", "error", err)
	} else {
		if set, err := store.ForPlayer(a.player()).Solved(); err == nil {
			solved = set
		}
		store.Close()
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range a.catalog.Levels() {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	for _, g := range groups {
		fmt.Printf("%s\n", g.Label())
		for _, lvl := range g.Levels {
			mark := " "
			if solved[lvl.ID] {
				mark = "✓"
			}
			fmt.Printf("  %s %-*s  %-20s  %d colors\n", mark, maxIDLen, lvl.ID, lvl.Title(), len(lvl.Anchors))
		}
		fmt.Println()
	}

	fmt.Printf("%d levels, %d solved by %s.\n", a.catalog.Len(), len(solved), a.player())
	fmt.Println("Run 'flow play <id>' to play a level.")
}
