package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate settings",
	Long: `Resolve settings and check every bound, listing all violations.
Exits with status 1 if any setting is out of range.

Examples:
  snake check
  snake check --config ./my-snake.yaml
  SNAKE_SPEED=20 snake check`,
	Args: cobra.NoArgs,
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) {
	settings, err := resolveSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !report(os.Stdout, settings) {
		os.Exit(1)
	}
}

// report prints the settings and their validation result. It returns
// whether the settings are valid.
func report(w io.Writer, s config.Settings) bool {
	fmt.Fprintf(w, "  rows_count:     %d\n", s.RowsCount)
	fmt.Fprintf(w, "  cols_count:     %d\n", s.ColsCount)
	fmt.Fprintf(w, "  speed:          %d (%s per step)\n", s.Speed, s.TickInterval())
	fmt.Fprintf(w, "  win_food_count: %d\n", s.WinFoodCount)
	fmt.Fprintln(w)

	result := s.Validate()
	if result.IsValid {
		fmt.Fprintln(w, "Settings are valid.")
		return true
	}

	fmt.Fprintf(w, "%d problem(s):\n", len(result.Errors))
	for _, msg := range result.Errors {
		fmt.Fprintf(w, "  - %s\n", msg)
	}
	return false
}
