package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagReset bool
	flagAll   bool
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show solved levels",
	Long: `Display which levels the current player has solved.

Examples:
  flow progress
  flow progress --player alice
  flow progress --all      # Solved counts of every player
  flow progress --reset    # Forget the current player's progress`,
	Args: cobra.NoArgs,
	Run:  runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the player's solved levels")
	progressCmd.Flags().BoolVar(&flagAll, "all", false, "Show progress of every player")
}

func runProgress(cmd *cobra.Command, args []string) {
	a, err := loadApp(false)
	exitOnError("loading levels", err)
	defer a.Close()

	store, err := a.openStore()
	exitOnError("opening progress database", err)
	defer store.Close()

	player := a.player()

	if flagReset {
		exitOnError("clearing progress", store.ClearProgress(player))
		fmt.Printf("Progress of %s cleared.\n", player)
		return
	}

	if flagAll {
		stats, err := store.AllPlayerStats()
		exitOnError("retrieving progress", err)
		if len(stats) == 0 {
			fmt.Println("No levels solved yet.")
			return
		}
		fmt.Printf("  %-16s  %-6s  %s\n", "Player", "Solved", "Last")
		fmt.Printf("  %-16s  %-6s  %s\n", "------", "------", "----")
		for _, ps := range stats {
			fmt.Printf("  %-16s  %-6d  %s\n", ps.Player, ps.Solved, ps.LastSolved.Format("2006-01-02 15:04"))
		}
		return
	}

	solved, err := store.SolvedLevels(player)
	exitOnError("retrieving progress", err)
	when := make(map[string]string, len(solved))
	for _, s := range solved {
		when[s.LevelID] = s.SolvedAt.Format("2006-01-02 15:04")
	}

	fmt.Printf("Progress - %s\n", player)
	fmt.Println()

	// Print header
	fmt.Printf("  %-12s  %-6s  %-20s  %s\n", "Level", "Size", "Name", "Solved")
	fmt.Printf("  %-12s  %-6s  %-20s  %s\n", "-----", "----", "----", "------")

	count := 0
	for _, lvl := range a.catalog.Levels() {
		date, ok := when[lvl.ID]
		if ok {
			count++
		} else {
			date = "-"
		}
		size := fmt.Sprintf("%dx%d", lvl.Rows, lvl.Cols)
		fmt.Printf("  %-12s  %-6s  %-20s  %s\n", lvl.ID, size, lvl.Title(), date)
	}

	fmt.Println()
	fmt.Printf("Solved: %d/%d\n", count, a.catalog.Len())
}
