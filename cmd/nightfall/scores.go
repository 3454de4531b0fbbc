package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightfall/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best recorded runs.

Examples:
  nightfall scores
  nightfall scores --limit 25
  nightfall scores --player ana`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs by this player (most recent first)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var runs []storage.RunRecord
	title := "Top runs"
	if flagPlayer != "" {
		title = "Runs by " + flagPlayer
		runs, err = store.PlayerRuns(flagPlayer, flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Nightfall - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'nightfall play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-7s  %-4s  %-7s  %-6s  %s\n", "Rank", "Player", "Score", "Wave", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %-4s  %-7s  %-6s  %s\n", "----", "------", "-----", "----", "------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-10s  %-7d  %-4d  %-7s  %-6s  %s\n",
			i+1, r.Player, r.Score, r.Wave, r.Outcome,
			fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show totals
	fmt.Println()
	if st, err := store.Stats(); err == nil {
		fmt.Printf("Runs: %d  Victories: %d  Best: %d  Best wave: %d\n", st.Runs, st.Victories, st.Best, st.BestWave)
	}
}
