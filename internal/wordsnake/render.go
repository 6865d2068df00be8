package wordsnake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/wordsnake/internal/core"
)

const (
	hudHeight = 3 // Prompt line, status line, separator
	cellWidth = 2 // Terminal columns per grid cell
)

// requiredSize returns the smallest screen that fits the HUD and the board.
func (g *Game) requiredSize() (int, int) {
	return g.cfg.Grid.Width*cellWidth + 2, hudHeight + g.cfg.Grid.Height + 2
}

// boardRect returns the bordered board area on a screen of the given width.
func (g *Game) boardRect(screenW int) core.Rect {
	w, h := g.requiredSize()
	x := max(0, (screenW-w)/2)
	return core.NewRect(x, hudHeight, w, h-hudHeight)
}

// Render draws the HUD, the board, and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		reqW, reqH := g.requiredSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", reqW, reqH))
		return
	}

	snap := g.session.Snapshot()
	g.renderHUD(dst, snap)

	board := g.boardRect(dst.Width())
	dst.DrawBox(board, core.ColorGray)
	g.renderTokens(dst, board, snap)
	g.renderSnake(dst, board, snap)

	switch snap.State {
	case StateGameOver:
		g.renderOverlay(dst, "Game Over",
			fmt.Sprintf("Score %d  Level %d", snap.Score, snap.Level),
			"Press R to restart")
	case StatePaused:
		g.renderOverlay(dst, "Paused", "Press P to resume")
	}
}

// renderHUD draws the prompt and the status line.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	prompt := snap.Prompt
	if prompt == "" {
		prompt = "..."
	}
	dst.DrawTextColored(1, 0, "Find: ", core.ColorWhite)
	dst.DrawTextColored(7, 0, prompt, core.ColorBrightWhite)

	hearts := strings.Repeat("♥", snap.Lives)
	status := fmt.Sprintf("Score: %d  Level: %d  Lives: ", snap.Score, snap.Level)
	dst.DrawText(1, 1, status)
	dst.DrawTextColored(1+core.TextWidth(status), 1, hearts, core.ColorRed)

	dst.DrawHLine(0, 2, dst.Width(), '─', core.ColorGray)
}

// renderTokens draws every word starting at its cell, clipped to the board.
func (g *Game) renderTokens(dst *core.Screen, board core.Rect, snap Snapshot) {
	right := board.Right() - 1
	for _, tok := range snap.Tokens {
		x, y := cellOrigin(board, tok.Cell)
		if !board.Contains(x, y) {
			continue
		}
		color := core.ColorBrightYellow
		if tok.Lang == LangEnglish {
			color = core.ColorBrightCyan
		}
		text := core.TruncateText(tok.Text, right-x)
		dst.DrawTextColored(x, y, text, color)
	}
}

// renderSnake draws the body over any word labels.
func (g *Game) renderSnake(dst *core.Screen, board core.Rect, snap Snapshot) {
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		x, y := cellOrigin(board, snap.Snake[i])
		if i == 0 {
			dst.DrawTextColored(x, y, "██", core.ColorBrightGreen)
			continue
		}
		dst.DrawTextColored(x, y, "▓▓", core.ColorGreen)
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, core.TextWidth(l))
	}

	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.Centered(width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightWhite
		}
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}

// cellOrigin maps a grid cell to the screen position of its left column.
func cellOrigin(board core.Rect, c Cell) (int, int) {
	return board.X + 1 + c.X*cellWidth, board.Y + 1 + c.Y
}
