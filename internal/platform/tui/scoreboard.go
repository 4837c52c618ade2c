package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/ledger"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			MarginBottom(1)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// scoreScreen is the top scores view shown once a game is over.
type scoreScreen struct {
	final       t2048.Snapshot
	entries     []ledger.Entry
	table       table.Model
	help        help.Model
	keys        KeyMap
	dismissible bool
}

// newScoreScreen builds the view for a finished game. The row holding the
// final score, if it made the list, is highlighted.
func newScoreScreen(final t2048.Snapshot, entries []ledger.Entry, keys KeyMap, dismissible bool) scoreScreen {
	rows := make([]table.Row, len(entries))
	current := -1
	for i, e := range entries {
		rows[i] = table.Row{fmt.Sprintf("#%d", i+1), fmt.Sprintf("%d", e.Score)}
		if current < 0 && e.Score == final.Score {
			current = i
		}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 12},
		}),
		table.WithRows(rows),
		table.WithHeight(ledger.MaxEntries+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	if current >= 0 {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)
		t.SetCursor(current)
	} else {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)

	return scoreScreen{
		final:       final,
		entries:     entries,
		table:       t,
		help:        help.New(),
		keys:        keys,
		dismissible: dismissible,
	}
}

// View renders the screen centered in a width x height area.
// A positive remaining time is shown as a countdown.
func (s scoreScreen) View(width, height int, remaining time.Duration) string {
	summary := fmt.Sprintf("Score %d   Max tile %d   Moves %d",
		s.final.Score, s.final.MaxTile, s.final.Moves)

	var scores string
	if len(s.entries) == 0 {
		scores = emptyStyle.Render("No scores recorded yet.")
	} else {
		scores = s.table.View()
	}

	var hint string
	if remaining > 0 {
		secs := int((remaining + time.Second - 1) / time.Second)
		hint = fmt.Sprintf("Closing in %ds", secs)
	}
	if s.dismissible {
		if hint != "" {
			hint += " | "
		}
		hint += "any key: close"
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("GAME OVER"),
		summaryStyle.Render(summary),
		boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, "TOP SCORES", scores)),
		hintStyle.Render(hint),
		s.help.View(s.keys),
	)

	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
