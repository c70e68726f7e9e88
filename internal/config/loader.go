package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadEnv.
const (
	EnvRowsCount    = "SNAKE_ROWS_COUNT"
	EnvColsCount    = "SNAKE_COLS_COUNT"
	EnvSpeed        = "SNAKE_SPEED"
	EnvWinFoodCount = "SNAKE_WIN_FOOD_COUNT"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/snake.yaml"

// Load reads setting overrides from a YAML file.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default
//
// Only a failing custom path is an error; the other locations are best effort.
func Load(customPath string) (Overrides, error) {
	var o Overrides

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return o, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &o); err != nil {
			return o, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return o, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &o); err == nil {
				return o, nil
			}
		}
	}

	if data, err := os.ReadFile(localConfigPath); err == nil {
		if err := yaml.Unmarshal(data, &o); err == nil {
			return o, nil
		}
	}

	if err := yaml.Unmarshal(DefaultYAML(), &o); err != nil {
		return Overrides{}, nil // Defaults() covers everything
	}
	return o, nil
}

// LoadEnv loads the given .env files (".env" when none are given) into the
// process environment and reads the SNAKE_* variables. Missing .env files
// are ignored; a variable that is set but not an integer is an error.
func LoadEnv(files ...string) (Overrides, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Overrides{}, fmt.Errorf("config: failed to load env file: %w", err)
	}

	var o Overrides
	fields := []struct {
		name string
		dst  **int
	}{
		{EnvRowsCount, &o.RowsCount},
		{EnvColsCount, &o.ColsCount},
		{EnvSpeed, &o.Speed},
		{EnvWinFoodCount, &o.WinFoodCount},
	}

	for _, f := range fields {
		raw, ok := os.LookupEnv(f.name)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Overrides{}, fmt.Errorf("config: %s is not an integer: %q", f.name, raw)
		}
		*f.dst = &v
	}
	return o, nil
}

// Marshal renders settings as YAML in the same shape Load accepts.
func Marshal(s Settings) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal settings: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
