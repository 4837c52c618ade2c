package tui

import (
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// ThemeFromConfig builds the board theme from the configured colors.
func ThemeFromConfig(c config.ThemeConfig) t2048.Theme {
	tiles := make(map[int]core.Color, len(c.Tiles))
	for v, color := range c.Tiles {
		tiles[v] = core.Color(color)
	}
	return t2048.Theme{
		Background: core.Color(c.Background),
		Text:       core.Color(c.Text),
		Tiles:      tiles,
	}
}
