package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flow/internal/engine"
	"github.com/vovakirdan/tui-flow/internal/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Validate level files",
	Long: `Parse level files and print the board of every level they hold.
Without arguments every loaded level is checked.

Supported formats: YAML (.yaml, .yml) and the plain list format (.txt).

Examples:
  flow check
  flow check ./my-levels/cave.yaml ./my-levels/pack.txt`,
	Run: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		a, err := loadApp(false)
		exitOnError("loading levels", err)
		defer a.Close()
		for _, lvl := range a.catalog.Levels() {
			printLevel(lvl)
		}
		fmt.Printf("%d levels OK\n", a.catalog.Len())
		return
	}

	failed := 0
	for _, path := range args {
		loaded, err := levels.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		for _, lvl := range loaded {
			printLevel(lvl)
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d files failed\n", failed, len(args))
		os.Exit(1)
	}
}

// printLevel prints the empty board of a level.
func printLevel(lvl levels.Level) {
	board, err := engine.NewBoard(lvl.ToEngine())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", lvl.ID, err)
		return
	}
	fmt.Printf("%s  %s  (%d colors)\n", lvl.ID, lvl.Title(), len(lvl.Anchors))
	fmt.Println(board.String())
	fmt.Println()
}
