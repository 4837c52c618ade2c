package core

// Color is a terminal color in a form lipgloss understands: an ANSI code
// ("208") or a hex value ("#eee4da"). The empty string means the
// terminal default.
type Color string

// ColorDefault leaves the terminal's own color in place.
const ColorDefault Color = ""

// Style is the foreground/background pair of a screen cell.
type Style struct {
	FG Color
	BG Color
}
