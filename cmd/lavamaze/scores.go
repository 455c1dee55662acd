package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lavamaze/internal/platform/tui"
	"github.com/vovakirdan/lavamaze/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the best recorded maze runs.

Examples:
  lavamaze scores
  lavamaze scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse runs in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if viewErr := tui.RunResults(store, gameID, width, height); viewErr != nil {
			fmt.Fprintf(os.Stderr, "Error showing runs: %v\n", viewErr)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Lava Maze")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'lavamaze play' and escape the maze to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Won", "Deaths", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "---", "------", "-----", "----")

	for i, entry := range runs {
		won := "no"
		if entry.Won {
			won = "yes"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6s  %-6d  %-8d  %s\n", i+1, entry.Score, won, entry.Deaths, entry.Ticks, dateStr)
	}

	fmt.Println()
	if highScore, hsErr := store.HighScore(gameID); hsErr == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
