package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top results and overall statistics.

Examples:
  snake scores
  snake scores -n 25
  snake scores -i        # Browse in a table
  snake scores --clear   # Delete all results`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of results to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse results in a table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored results")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results deleted.")
		return
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	results, err := store.TopResults(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-5s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Result", "Grid", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-6s  %-5s  %s\n", "----", "------", "-----", "------", "----", "----")

	for i, r := range results {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-5d  %-6s  %-5s  %s\n",
			i+1, player, r.Score, r.Outcome,
			fmt.Sprintf("%dx%d", r.Cols, r.Rows),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d  Wins: %d  Best: %d  Average: %.1f\n",
			stats.Rounds, stats.Wins, stats.HighScore, stats.AvgScore)
	}
}
