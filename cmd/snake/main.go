// snake is a terminal snake game on a wrapped grid.
//
// Usage:
//
//	snake play      - Play a round in the terminal
//	snake serve     - Start SSH server for remote play
//	snake scores    - Show high scores
//	snake config    - Print the effective settings as YAML
//	snake check     - Validate settings and list every error
//
// Global flags:
//
//	--config <path>     - Settings YAML file
//	--rows, --cols      - Grid size (10-30)
//	--speed <n>         - Steps per second (1-10)
//	--win-food <n>      - Body length above which the round is won (5-50)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--db <path>         - Set database path (default: ~/.snake/scores.db)
//	--log-level <level> - debug, info, warn or error
//	--trace             - Export round traces over OTLP
//	--trace-endpoint    - Collector URL for --trace
//	--trace-sample      - Share of rounds to trace
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/telemetry"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLogLevel   string
	flagTrace      bool
	flagTraceURL   string
	flagTraceRatio float64
	flagEnvFile    string

	settingsOverrides settingsFlags
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game on a wrapped grid",
	Long: `Snake is a terminal game: steer the snake to the food, grow, and
avoid biting yourself. The grid wraps around at every edge.

Settings are layered, later sources winning:
  built-in defaults
  config file (--config, ~/.snake/config.yaml or ./configs/snake.yaml)
  environment (SNAKE_ROWS_COUNT, SNAKE_COLS_COUNT, SNAKE_SPEED,
               SNAKE_WIN_FOOD_COUNT, also read from .env)
  flags (--rows, --cols, --speed, --win-food)

Examples:
  snake play
  snake play --rows 15 --cols 30 --speed 4
  snake serve --ssh :2222
  snake scores
  snake check --config ./my-snake.yaml`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to settings YAML")
	pf.StringVar(&flagEnvFile, "env-file", ".env", "Path to .env file (ignored if missing)")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagTrace, "trace", false, "Export round traces over OTLP (uses OTEL_* env vars)")
	pf.StringVar(&flagTraceURL, "trace-endpoint", "", "OTLP/HTTP collector URL (default from OTEL_EXPORTER_OTLP_ENDPOINT)")
	pf.Float64Var(&flagTraceRatio, "trace-sample", 1, "Share of rounds to trace, between 0 and 1")
	settingsOverrides.register(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(checkCmd)
}

// newLogger builds the CLI logger at the --log-level threshold.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// setupTracing returns the tracer for round spans and a shutdown func.
// Without --trace, or if the exporter cannot start, rounds are not traced.
func setupTracing(ctx context.Context, logger *log.Logger, mode string) (trace.Tracer, func()) {
	if !flagTrace {
		return telemetry.NoopTracer(), func() {}
	}

	provider, err := telemetry.Start(ctx, telemetry.Options{
		Endpoint:    flagTraceURL,
		Mode:        mode,
		SampleRatio: flagTraceRatio,
	})
	if err != nil {
		logger.Warn("telemetry setup failed, running without traces", "error", err)
		return telemetry.NoopTracer(), func() {}
	}

	return provider.Tracer(), func() {
		if err := provider.Shutdown(ctx); err != nil {
			logger.Warn("error shutting down telemetry", "error", err)
		}
	}
}

// resolveSettings layers config file, environment and flags over the
// defaults. The result is not validated.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	file, err := config.Load(flagConfig)
	if err != nil {
		return config.Settings{}, err
	}

	env, err := config.LoadEnv(flagEnvFile)
	if err != nil {
		return config.Settings{}, err
	}

	return config.Init(file, env, settingsOverrides.overrides(cmd)), nil
}
