package t2048

import (
	"fmt"
	"strconv"

	platformcore "github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/games/t2048/core"
)

const (
	hudHeight    = 3 // Title, score line, stats line
	minCellInner = 4 // Narrowest cell interior
	cellHeight   = 2 // Height of each cell (including top border)
)

// boardLayout holds the derived board geometry for the current size.
type boardLayout struct {
	cellWidth int // Including left border
	boardW    int
	boardH    int
}

// layout computes cell and board dimensions. Cells widen when the largest
// tile no longer fits.
func (g *Game) layout() boardLayout {
	inner := minCellInner
	if g.engine != nil {
		if w := len(strconv.Itoa(g.engine.MaxTile())) + 2; w > inner {
			inner = w
		}
	}
	cw := inner + 1
	return boardLayout{
		cellWidth: cw,
		boardW:    g.size*cw + 1,
		boardH:    g.size*cellHeight + 1,
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	boardX := (g.screenW - l.boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, l.boardW)
	g.renderBoard(dst, boardX, boardY, l)

	board := platformcore.NewRect(boardX, boardY, l.boardW, l.boardH)
	g.renderOverlays(dst, board)

	if footerY := board.Bottom() + 1; footerY < g.screenH {
		controls := g.Controls()
		x := platformcore.Clamp((g.screenW-len(controls))/2, 0, g.screenW)
		dst.DrawTextColored(x, footerY, controls, platformcore.ColorGray)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws score, best and move counters above the board.
func (g *Game) renderHUD(dst *platformcore.Screen, boardX, boardW int) {
	title := fmt.Sprintf("2048  %dx%d", g.size, g.size)
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, platformcore.ColorBrightYellow)

	score := g.engine.Score()
	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", score.Current))

	best := fmt.Sprintf("Best: %d", score.Best)
	dst.DrawText(max(boardX, boardX+boardW-len(best)), 1, best)

	stats := fmt.Sprintf("Moves: %d  Max: %d", g.engine.Moves(), g.engine.MaxTile())
	dst.DrawTextColored(boardX+(boardW-len(stats))/2, 2, stats, platformcore.ColorGray)
}

// renderBoard draws the grid lines and tiles. The top screen row shows the
// highest logical row.
func (g *Game) renderBoard(dst *platformcore.Screen, boardX, boardY int, l boardLayout) {
	n := g.size
	for row := range n + 1 {
		for col := range n + 1 {
			px := boardX + col*l.cellWidth
			py := boardY + row*cellHeight

			dst.SetColored(px, py, junction(row, col, n), platformcore.ColorGray)

			if col < n {
				for i := 1; i < l.cellWidth; i++ {
					dst.SetColored(px+i, py, '─', platformcore.ColorGray)
				}
			}
			if row < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', platformcore.ColorGray)
				}
			}
		}
	}

	for row := range n {
		y := n - 1 - row
		for x := range n {
			val := g.engine.Cell(x, y)
			if val == 0 {
				continue
			}
			s := strconv.Itoa(val)
			cellX := boardX + x*l.cellWidth + 1
			cellY := boardY + row*cellHeight + 1
			pad := max(0, (l.cellWidth-1-len(s))/2)
			dst.DrawTextColored(cellX+pad, cellY, s, tileColor(val))
		}
	}
}

// junction returns the box-drawing rune at a grid line intersection.
func junction(row, col, n int) rune {
	switch {
	case row == 0 && col == 0:
		return '┌'
	case row == 0 && col == n:
		return '┐'
	case row == n && col == 0:
		return '└'
	case row == n && col == n:
		return '┘'
	case row == 0:
		return '┬'
	case row == n:
		return '┴'
	case col == 0:
		return '├'
	case col == n:
		return '┤'
	default:
		return '┼'
	}
}

// tileColor picks a color for a tile value.
func tileColor(v int) platformcore.Color {
	switch {
	case v <= 2:
		return platformcore.ColorWhite
	case v == 4:
		return platformcore.ColorBrightWhite
	case v == 8:
		return platformcore.ColorYellow
	case v == 16:
		return platformcore.ColorOrange
	case v == 32:
		return platformcore.ColorBrightRed
	case v == 64:
		return platformcore.ColorRed
	case v <= 256:
		return platformcore.ColorBrightYellow
	case v <= 512:
		return platformcore.ColorBrightGreen
	case v <= 1024:
		return platformcore.ColorBrightCyan
	case v == 2048:
		return platformcore.ColorBrightMagenta
	default:
		return platformcore.ColorMagenta
	}
}

// renderOverlays draws pause and game over boxes over the board.
func (g *Game) renderOverlays(dst *platformcore.Screen, board platformcore.Rect) {
	if g.paused {
		drawOverlay(dst, board, "PAUSED", "Press P to resume")
		return
	}

	if g.engine.State() != core.StateGameOver {
		return
	}

	headline := "GAME OVER"
	if g.engine.EndReason() == core.EndManual {
		headline = "GAME ENDED"
	}
	drawOverlay(dst, board,
		headline,
		fmt.Sprintf("Score: %d  Max: %d", g.engine.Score().Current, g.engine.MaxTile()),
		"Press R for a new game",
	)
}

// drawOverlay draws a boxed message centered on area.
func drawOverlay(dst *platformcore.Screen, area platformcore.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.CenteredIn(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawTextColored(cx-len(line)/2, box.Y+1+i, line, platformcore.ColorBrightWhite)
	}
}
