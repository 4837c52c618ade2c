// Package config provides YAML-based configuration loading for the game:
// file locations, the game over screen and the tile color theme.
// The board rules themselves are fixed and not configurable.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the full application configuration.
// It is loaded once at startup and treated as immutable afterwards.
type Config struct {
	TickRate     int                `yaml:"tick_rate"`
	LedgerPath   string             `yaml:"ledger_path"`
	HistoryPath  string             `yaml:"history_path"`
	ScoreDisplay ScoreDisplayConfig `yaml:"score_display"`
	Log          LogConfig          `yaml:"log"`
	Theme        ThemeConfig        `yaml:"theme"`
}

// ScoreDisplayConfig controls the top scores screen shown at game over.
type ScoreDisplayConfig struct {
	DurationSecs int  `yaml:"duration_secs"` // How long the screen stays up
	Dismissible  bool `yaml:"dismissible"`   // Any key closes it early
}

// Duration returns the display time as a time.Duration.
func (c ScoreDisplayConfig) Duration() time.Duration {
	return time.Duration(c.DurationSecs) * time.Second
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file used while the TUI owns the terminal
}

// ThemeConfig defines the board colors as lipgloss color strings.
type ThemeConfig struct {
	Background string         `yaml:"background"`
	Text       string         `yaml:"text"`
	Tiles      map[int]string `yaml:"tiles"` // Key 0 is the empty cell
}

// ErrInvalidConfig is wrapped by all validation errors.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > 240 {
		return fmt.Errorf("%w: tick_rate %d out of range 1-240", ErrInvalidConfig, c.TickRate)
	}
	if c.LedgerPath == "" {
		return fmt.Errorf("%w: ledger_path is empty", ErrInvalidConfig)
	}
	if c.ScoreDisplay.DurationSecs < 0 {
		return fmt.Errorf("%w: score_display.duration_secs is negative", ErrInvalidConfig)
	}
	for v := range c.Theme.Tiles {
		if v != 0 && (v < 2 || v&(v-1) != 0) {
			return fmt.Errorf("%w: theme tile %d is not a power of two", ErrInvalidConfig, v)
		}
	}
	return nil
}
