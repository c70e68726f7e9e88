package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round in the terminal.

Controls:
  Arrows/WASD/hjkl - Steer (reversing into yourself is ignored)
  Space/Enter      - Start/stop
  R                - New round
  T                - High scores
  ?                - Full help
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play --speed 5 --win-food 20
  snake play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger := newLogger("snake")

	settings, err := resolveSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := settings.Validate().Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'snake check' to see every setting.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	needW, needH := snake.RequiredSize(settings.ColsCount, settings.RowsCount)
	if width < needW || height < needH+1 {
		logger.Warn("terminal is smaller than the grid",
			"size", fmt.Sprintf("%dx%d", width, height),
			"need", fmt.Sprintf("%dx%d", needW, needH+1),
		)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, results will not be saved", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	ctx := context.Background()
	tracer, shutdown := setupTracing(ctx, logger, "local")
	defer shutdown()

	err = tui.Run(tui.Options{
		Settings: settings,
		Store:    store,
		Player:   playerName(),
		Seed:     flagSeed,
		Logger:   logger,
		Tracer:   tracer,
		Width:    width,
		Height:   height,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// playerName is the local user's name for stored results.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}
