package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func newFlagCmd(t *testing.T, f *settingsFlags, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}
	return cmd
}

func TestSettingsFlagsOnlyChanged(t *testing.T) {
	var f settingsFlags
	cmd := newFlagCmd(t, &f, "--rows", "15", "--win-food", "20")

	o := f.overrides(cmd)
	if o.RowsCount == nil || *o.RowsCount != 15 {
		t.Errorf("RowsCount = %v, expected 15", o.RowsCount)
	}
	if o.WinFoodCount == nil || *o.WinFoodCount != 20 {
		t.Errorf("WinFoodCount = %v, expected 20", o.WinFoodCount)
	}
	if o.ColsCount != nil || o.Speed != nil {
		t.Error("Flags not given on the command line must not override")
	}
}

func TestSettingsFlagsNone(t *testing.T) {
	var f settingsFlags
	cmd := newFlagCmd(t, &f)

	if o := f.overrides(cmd); !o.IsEmpty() {
		t.Errorf("Expected empty overrides, got %+v", o)
	}
}

func TestResolveSettingsLayers(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)

	cfgPath := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(cfgPath, []byte("rows_count: 12\ncols_count: 12\nspeed: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvSpeed, "4")

	oldConfig, oldEnv, oldOverrides := flagConfig, flagEnvFile, settingsOverrides
	t.Cleanup(func() {
		flagConfig, flagEnvFile, settingsOverrides = oldConfig, oldEnv, oldOverrides
	})
	flagConfig = cfgPath
	flagEnvFile = filepath.Join(dir, "missing.env")
	settingsOverrides = settingsFlags{}

	cmd := newFlagCmd(t, &settingsOverrides, "--cols", "25")

	got, err := resolveSettings(cmd)
	if err != nil {
		t.Fatalf("resolveSettings() failed: %v", err)
	}

	want := config.Settings{RowsCount: 12, ColsCount: 25, Speed: 4, WinFoodCount: config.DefaultWinFoodCount}
	if got != want {
		t.Errorf("resolveSettings() = %+v, expected %+v", got, want)
	}
}

func TestReportValid(t *testing.T) {
	var buf bytes.Buffer
	if !report(&buf, config.Defaults()) {
		t.Error("Defaults should be reported valid")
	}
	if !strings.Contains(buf.String(), "Settings are valid.") {
		t.Errorf("Unexpected report:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "500ms") {
		t.Errorf("Report should show the step interval:\n%s", buf.String())
	}
}

func TestReportListsEveryError(t *testing.T) {
	var buf bytes.Buffer
	ok := report(&buf, config.Settings{RowsCount: 5, ColsCount: 50, Speed: 0, WinFoodCount: 100})
	if ok {
		t.Fatal("Expected invalid settings")
	}

	out := buf.String()
	if !strings.Contains(out, "4 problem(s)") {
		t.Errorf("Expected 4 problems:\n%s", out)
	}
	for _, field := range []string{"rowsCount", "colsCount", "speed", "winFoodCount"} {
		if !strings.Contains(out, field) {
			t.Errorf("Report is missing %s:\n%s", field, out)
		}
	}
}

// chdir changes the working directory for the duration of the test,
// like testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
