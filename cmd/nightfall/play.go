package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightfall/internal/platform/tui"
)

var (
	flagName     string
	flagContinue bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a survival run directly, without the menu.

Controls:
  A/D, Left/Right   - Move
  Space/W/Up        - Jump (hold for full height)
  F/J/X             - Melee attack
  P/Esc             - Pause
  S (while paused)  - Save the run
  B (paused/over)   - Leave the run
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Fewer, smaller waves, more drops
  normal - Default waves, mild scaling
  hard   - Bigger waves, more on screen, fewer drops
  fixed  - No per-wave scaling

Examples:
  nightfall play
  nightfall play --name ana --difficulty hard
  nightfall play --continue
  nightfall play --config ./my-survival.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name (up to 10 characters)")
	playCmd.Flags().BoolVar(&flagContinue, "continue", false, "Continue from the save file")
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	s, err := newSession(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Play(s.launcher, playerName(flagName), flagContinue)

	// Close store and log before potential exit
	s.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName falls back to the login name.
func playerName(name string) string {
	if name != "" {
		return name
	}
	return os.Getenv("USER")
}
