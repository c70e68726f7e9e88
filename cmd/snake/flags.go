package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// settingsFlags holds the per-setting flags. Only flags given on the
// command line override lower layers.
type settingsFlags struct {
	rows    int
	cols    int
	speed   int
	winFood int
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.IntVar(&f.rows, "rows", config.DefaultRowsCount, "Grid rows (10-30)")
	pf.IntVar(&f.cols, "cols", config.DefaultColsCount, "Grid columns (10-30)")
	pf.IntVar(&f.speed, "speed", config.DefaultSpeed, "Steps per second (1-10)")
	pf.IntVar(&f.winFood, "win-food", config.DefaultWinFoodCount, "Body length above which the round is won (5-50)")
}

func (f *settingsFlags) overrides(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()

	if flags.Changed("rows") {
		o.RowsCount = &f.rows
	}
	if flags.Changed("cols") {
		o.ColsCount = &f.cols
	}
	if flags.Changed("speed") {
		o.Speed = &f.speed
	}
	if flags.Changed("win-food") {
		o.WinFoodCount = &f.winFood
	}
	return o
}
