// jetpack is a side-scrolling jetpack shooter for the terminal.
//
// Usage:
//
//	jetpack                  - Pick a mode from the menu
//	jetpack play [mode]      - Fly a mode directly (default: classic)
//	jetpack list             - List modes
//	jetpack scores [mode]    - Show high scores
//	jetpack pilot            - Show or change the pilot name
//	jetpack serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.jetpack/scores.db)
//	--config <path> - Load tuning from a YAML file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register modes
	_ "github.com/vovakirdan/jetpack-arcade/internal/games/jetpack"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jetpack",
	Short: "Jetpack Raid - a jetpack shooter in your terminal",
	Long: `Jetpack Raid is an endless side-scroller: fly through barriers, shoot
down drones and turrets, grab power-ups and survive the boss waves.

Running jetpack without a command opens the mode menu.

Examples:
  jetpack
  jetpack play ace
  jetpack scores
  jetpack pilot set Maverick
  jetpack serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jetpack/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug entries to the log")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(pilotCmd)
	rootCmd.AddCommand(serveCmd)
}
