// flow is a pipe-connection puzzle for the terminal: link every pair of
// same-colored anchors and fill the whole board.
//
// Usage:
//
//	flow list                - List levels grouped by board size
//	flow play [level]        - Open the level picker, or a level directly
//	flow serve               - Start SSH server for remote play
//	flow progress            - Show which levels are solved
//	flow check [file...]     - Validate level files and print their boards
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.flow/configs/flow.yaml)
//	--db <path>         - Progress database (default: ~/.flow/progress.db)
//	--levels <dir>      - Extra level directory
//	--player <name>     - Progress owner for local play
//	--theme <name>      - default, neon, pastel or mono
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLevels   string
	flagPlayer   string
	flagTheme    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flow",
	Short: "Flow - connect the colors in your terminal",
	Long: `Flow is a terminal pipe puzzle. Each level is a grid holding pairs
of colored anchors: draw a pipe between the two anchors of every color
so that the pipes fill the whole board without crossing.

Available commands:
  list      - Show all levels grouped by board size
  play      - Open the level picker or a given level
  serve     - Start SSH server for remote play
  progress  - Show or reset solved levels
  check     - Validate level files

Examples:
  flow list
  flow play
  flow play 5x5-01
  flow serve --ssh :2222
  flow check ./my-levels/*.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Extra directory of level files")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name progress is recorded under")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme: default, neon, pastel, mono")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(checkCmd)
}
