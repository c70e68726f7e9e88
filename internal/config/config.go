// Package config provides the snake game's settings: defaults, bounds
// validation and layered loading from YAML files, the environment and flags.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Default values used when no override is given.
const (
	DefaultRowsCount    = 21
	DefaultColsCount    = 21
	DefaultSpeed        = 2
	DefaultWinFoodCount = 50
)

// Inclusive bounds for each setting.
const (
	MinRowsCount    = 10
	MaxRowsCount    = 30
	MinColsCount    = 10
	MaxColsCount    = 30
	MinSpeed        = 1
	MaxSpeed        = 10
	MinWinFoodCount = 5
	MaxWinFoodCount = 50
)

// Settings holds the numeric parameters of a game.
// A Settings value is immutable once handed to a game.
type Settings struct {
	RowsCount    int `yaml:"rows_count"`
	ColsCount    int `yaml:"cols_count"`
	Speed        int `yaml:"speed"`          // Steps per second
	WinFoodCount int `yaml:"win_food_count"` // Body length above which the round is won
}

// Overrides holds user-supplied values. A nil field keeps the value
// it is merged into.
type Overrides struct {
	RowsCount    *int `yaml:"rows_count"`
	ColsCount    *int `yaml:"cols_count"`
	Speed        *int `yaml:"speed"`
	WinFoodCount *int `yaml:"win_food_count"`
}

// Defaults returns the default settings.
func Defaults() Settings {
	return Settings{
		RowsCount:    DefaultRowsCount,
		ColsCount:    DefaultColsCount,
		Speed:        DefaultSpeed,
		WinFoodCount: DefaultWinFoodCount,
	}
}

// Init merges overrides into the defaults, later overrides winning.
func Init(overrides ...Overrides) Settings {
	s := Defaults()
	for _, o := range overrides {
		s = s.Merge(o)
	}
	return s
}

// Merge returns a copy of s with every non-nil override applied.
func (s Settings) Merge(o Overrides) Settings {
	if o.RowsCount != nil {
		s.RowsCount = *o.RowsCount
	}
	if o.ColsCount != nil {
		s.ColsCount = *o.ColsCount
	}
	if o.Speed != nil {
		s.Speed = *o.Speed
	}
	if o.WinFoodCount != nil {
		s.WinFoodCount = *o.WinFoodCount
	}
	return s
}

// IsEmpty reports whether no field is set.
func (o Overrides) IsEmpty() bool {
	return o.RowsCount == nil && o.ColsCount == nil && o.Speed == nil && o.WinFoodCount == nil
}

// TickInterval returns the time between two snake steps.
// Only meaningful for valid settings.
func (s Settings) TickInterval() time.Duration {
	if s.Speed <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(s.Speed)
}

// ValidationResult is the outcome of Validate.
type ValidationResult struct {
	IsValid bool
	Errors  []string // One message per violated bound, in field order
}

// Validate checks every setting against its bounds and collects all
// violations rather than stopping at the first one.
func (s Settings) Validate() ValidationResult {
	var errs []string
	check := func(name string, val, lo, hi int) {
		if val < lo || val > hi {
			errs = append(errs, fmt.Sprintf("%s must be between %d and %d, got %d", name, lo, hi, val))
		}
	}

	check("rowsCount", s.RowsCount, MinRowsCount, MaxRowsCount)
	check("colsCount", s.ColsCount, MinColsCount, MaxColsCount)
	check("speed", s.Speed, MinSpeed, MaxSpeed)
	check("winFoodCount", s.WinFoodCount, MinWinFoodCount, MaxWinFoodCount)

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// Err returns nil for a valid result, or a *ValidationError carrying
// every message.
func (r ValidationResult) Err() error {
	if r.IsValid {
		return nil
	}
	return &ValidationError{Errors: r.Errors}
}

// ValidationError reports a configuration that violates one or more bounds.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "config: invalid settings: " + strings.Join(e.Errors, "; ")
}
