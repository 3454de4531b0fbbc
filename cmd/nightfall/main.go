// nightfall is a side-view wave survival game for the terminal.
//
// Usage:
//
//	nightfall play             - Start a run directly
//	nightfall menu             - Start the menu (new game, continue, scores)
//	nightfall serve            - Start SSH server for remote play
//	nightfall scores           - Show the run history
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible spawning
//	--db <path>           - Set run history database (default: ~/.nightfall/runs.db)
//	--data-dir <path>     - Set save file directory (default: ~/.nightfall)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagDataDir  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nightfall",
	Short: "Nightfall - survive five waves in your terminal",
	Long: `Nightfall is a side-view survival game. Hold out against five waves
of pursuers on a fixed set of platforms, pick up what they drop and keep
your health above zero.

Available commands:
  play     - Start a run directly
  menu     - Interactive menu with continue and scores
  serve    - Start SSH server for remote play
  scores   - View the run history

Examples:
  nightfall play --name ana
  nightfall play --continue
  nightfall menu --difficulty hard
  nightfall serve --ssh :2222
  nightfall scores --limit 20`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.nightfall/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "~/.nightfall", "Directory for save, high score and log files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
