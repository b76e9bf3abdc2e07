package ten

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mamoru/ten/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// tierColors maps tiers 0..MaxTier+1 to tile colors.
var tierColors = [...]core.Color{
	core.ColorWhite,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorOrange,
	core.ColorRed,
	core.ColorMagenta,
	core.ColorBrightMagenta,
	core.ColorBrightYellow,
	core.ColorBrightWhite,
}

// TierColor returns the display color for a cell value.
func TierColor(v int) core.Color {
	switch {
	case v == Corrupt:
		return core.ColorRed
	case v < 0:
		return core.ColorDefault
	case v >= len(tierColors):
		return core.ColorBrightWhite
	}
	return tierColors[v]
}

// cellLabel is the text drawn inside a cell.
func cellLabel(v int) string {
	switch {
	case v == Empty:
		return ""
	case v == Corrupt:
		return "?"
	}
	return strconv.Itoa(v)
}

// layoutSize returns the minimal screen size for the current board.
func (g *Game) layoutSize() (int, int) {
	size := DefaultSize
	if g.board != nil {
		size = g.board.Size()
	}
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1
	return max(boardW, 24), hudHeight + 1 + boardH + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.board == nil {
		return
	}

	size := g.board.Size()
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1
	boardX := max((g.screenW-boardW)/2, 0)
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY, size)
	g.renderBlocked(dst, boardY+boardH)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and best tier.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.title
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	scoreStr := "Score: " + Display(g.board.Score()).StringFixed(1)
	dst.DrawText(boardX, 1, scoreStr)

	grid := g.board.Grid()
	best := "-"
	if m := grid.MaxTile(); m >= 0 {
		best = strconv.Itoa(m)
	}
	infoStr := fmt.Sprintf("Best: %s", best)
	dst.DrawText(max(boardX+boardW-len(infoStr), boardX), 1, infoStr)

	movesStr := fmt.Sprintf("Moves: %d", g.moves)
	dst.DrawText(boardX+(boardW-len(movesStr))/2, 2, movesStr)
}

// renderBoard draws the grid lines and tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY, size int) {
	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetCell(px, py, corner, core.ColorGray)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, '─', core.ColorGray)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	grid := g.board.Grid()
	for y, row := range grid {
		for x, v := range row {
			label := cellLabel(v)
			if label == "" {
				continue
			}
			if len(label) > cellWidth-1 {
				label = label[:cellWidth-1]
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1
			padLeft := max((cellWidth-1-len(label))/2, 0)
			dst.DrawTextColor(cellX+padLeft, cellY, label, TierColor(v))
		}
	}
}

// renderBlocked lists the directions that can no longer move.
func (g *Game) renderBlocked(dst *core.Screen, y int) {
	var blocked []string
	for _, dir := range Directions() {
		if g.exhausted[dir] {
			blocked = append(blocked, dir.String())
		}
	}
	if len(blocked) == 0 {
		return
	}
	line := "Blocked: " + strings.Join(blocked, ", ")
	x := max((g.screenW-len(line))/2, 0)
	dst.DrawTextColor(x, y, line, core.ColorGray)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2
	score := Display(g.board.Score()).StringFixed(1)

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.won:
		g.drawOverlay(dst, centerX, centerY, "TEN!", "Score "+score, "Press R to restart")
	case g.gameOver:
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", "Score "+score, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/hjkl: Move | N: New | P: Pause | Ctrl+S/Ctrl+O: Save/Load board | Q: Quit"
}
