package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// Colors follow the classic 2048 palette.
func DefaultConfig() Config {
	return Config{
		TickRate:    30,
		LedgerPath:  "~/.t2048/scoreboard.json",
		HistoryPath: "~/.t2048/history.db",
		ScoreDisplay: ScoreDisplayConfig{
			DurationSecs: 10,
			Dismissible:  true,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.t2048/t2048.log",
		},
		Theme: ThemeConfig{
			Background: "#bbada0",
			Text:       "#776e65",
			Tiles: map[int]string{
				0:    "#cdc1b4",
				2:    "#eee4da",
				4:    "#ede0c8",
				8:    "#f2b179",
				16:   "#f59563",
				32:   "#f67c5f",
				64:   "#f65e3b",
				128:  "#edcf72",
				256:  "#edcc61",
				512:  "#edc850",
				1024: "#edc53f",
				2048: "#edc22e",
			},
		},
	}
}
