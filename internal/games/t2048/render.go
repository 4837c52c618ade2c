package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	tileWidth  = 7 // Width of a tile in characters
	tileHeight = 3 // Height of a tile in lines
	tileGap    = 1 // Spacing between tiles and around the board

	boardW    = Size*tileWidth + (Size+1)*tileGap
	boardH    = Size*tileHeight + (Size+1)*tileGap
	hudHeight = 4
)

// Theme holds the colors used to draw the board.
type Theme struct {
	Background core.Color         // Board background behind the tiles
	Text       core.Color         // Tile numbers
	Tiles      map[int]core.Color // Tile background per value; key 0 is the empty cell
}

// TileColor returns the background for a tile value. Values with no
// entry use the color of the highest configured value.
func (t Theme) TileColor(value int) core.Color {
	if c, ok := t.Tiles[value]; ok {
		return c
	}
	highest := -1
	color := core.ColorDefault
	for v, c := range t.Tiles {
		if v > highest {
			highest = v
			color = c
		}
	}
	return color
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)

	controls := g.Controls()
	dst.DrawText((g.screenW-len(controls))/2, boardY+boardH+1, controls)

	if g.phase == PhaseGameOver {
		board := core.NewRect(boardX, boardY, boardW, boardH)
		cx, cy := board.Center()
		g.drawOverlay(dst, cx, cy,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.state.Score()),
			fmt.Sprintf("Max tile: %d", g.state.Board().MaxTile()),
		)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score, max tile and move count.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2048"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.state.Score())
	dst.DrawText(boardX, 1, scoreStr)

	maxStr := fmt.Sprintf("Max: %d", g.state.Board().MaxTile())
	dst.DrawText(boardX+boardW-len(maxStr), 1, maxStr)

	movesStr := fmt.Sprintf("Moves: %d", g.moves)
	dst.DrawText(boardX, 2, movesStr)
}

// renderBoard draws the 4x4 grid with colored tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.FillRect(core.NewRect(boardX, boardY, boardW, boardH), ' ', core.Style{BG: g.theme.Background})

	board := g.state.Board()
	for r := range Size {
		for c := range Size {
			val := board[r][c]
			x := boardX + tileGap + c*(tileWidth+tileGap)
			y := boardY + tileGap + r*(tileHeight+tileGap)

			style := core.Style{FG: g.theme.Text, BG: g.theme.TileColor(val)}
			dst.FillRect(core.NewRect(x, y, tileWidth, tileHeight), ' ', style)

			if val == 0 {
				continue
			}

			label := strconv.Itoa(val)
			if g.hasLastSpawn && g.lastSpawn == (Cell{Row: r, Col: c}) {
				label = "+" + label
			}
			padLeft := core.Max((tileWidth-len(label))/2, 0)
			dst.DrawStyledText(x+padLeft, y+tileHeight/2, label, style)
		}
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.Style{})
	dst.DrawBox(box, core.Style{})

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | Q: Quit"
}
