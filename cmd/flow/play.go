package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flow/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the puzzle",
	Long: `Open the level picker, or start the given level directly.

Controls:
  Arrows/WASD  - Grow the selected pipe (step back to undo)
  h/j/k/l      - Move the cursor
  Enter/Space  - Start a pipe from the anchor under the cursor
  Mouse click  - Start a pipe from the clicked anchor
  R            - Restart the level
  N            - Next level
  ?            - Rules
  Esc          - Back to the level picker
  Q/Ctrl+C     - Quit

Logs are written to the configured log file while playing.

Examples:
  flow play
  flow play 5x5-02
  flow play --levels ./my-levels --theme neon`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	a, err := loadApp(true)
	exitOnError("loading levels", err)

	start := ""
	if len(args) == 1 {
		start = args[0]
		if _, ok := a.catalog.Get(start); !ok {
			a.Close()
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", start)
			fmt.Fprintln(os.Stderr, "Run 'flow list' to see available levels.")
			os.Exit(1)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open progress storage
	store, err := a.openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		// Continue without storage - the puzzle still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Store:      store,
		Catalog:    a.catalog,
		Player:     a.player(),
		Theme:      a.theme,
		Logger:     a.logger,
		StartLevel: start,
		Width:      width,
		Height:     height,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", runErr)
		os.Exit(1)
	}
}
