package wordsearch

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/puzzle"
)

const (
	cellWidth = 2 // Letter plus gap
	hudHeight = 3 // Title, HUD line, top border
	listGap   = 4 // Columns between grid border and word list
)

// layout holds screen positions computed from the screen and grid size.
type layout struct {
	gridX, gridY int // Screen position of cell (0,0)
	listX        int
	listRows     int
	showList     bool
}

// computeLayout positions the grid and word list and flags screens that
// cannot hold the grid.
func (g *Game) computeLayout() {
	if g.session == nil || g.session.Grid() == nil {
		return
	}
	size := g.session.Grid().Size()
	gridW := size*cellWidth - 1
	boxW := gridW + 4
	words := g.session.Words()
	cols := (len(words) + size - 1) / max(size, 1)
	listW := cols * wordColumnWidth(words)

	minW := boxW
	minH := hudHeight + size + 3 // Grid, bottom border, status line, footer
	g.tooSmall = g.screenW < minW || g.screenH < minH

	total := boxW + listGap + listW
	l := layout{gridY: hudHeight, listRows: size}
	if g.screenW >= total {
		left := (g.screenW - total) / 2
		l.gridX = left + 2
		l.listX = left + boxW + listGap
		l.showList = true
	} else {
		l.gridX = (g.screenW-boxW)/2 + 2
	}
	g.layout = l
}

// cellAt maps screen coordinates to a grid cell. The gap right of a letter
// belongs to that letter.
func (g *Game) cellAt(x, y int) (puzzle.Cell, bool) {
	dx := x - g.layout.gridX
	dy := y - g.layout.gridY
	if dx < 0 || dy < 0 {
		return puzzle.Cell{}, false
	}
	c := puzzle.At(dy, dx/cellWidth)
	if !g.session.Grid().InBounds(c) {
		return puzzle.Cell{}, false
	}
	return c, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	if g.layout.showList {
		g.renderWordList(dst)
	}
	g.renderStatus(dst)

	hint := "arrows move  space select  esc cancel  tab submit  p pause  q quit"
	dst.DrawTextCentered(g.screenH-1, hint, core.ColorGray)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderHUD draws the title and the level, found, timer and stars line.
func (g *Game) renderHUD(dst *core.Screen) {
	p := g.session.CurrentProgress()

	title := "Word Search: " + p.Category
	if g.mode == ModeDaily {
		title = fmt.Sprintf("Daily %s: %s", g.dailyKey, p.Category)
	}
	dst.DrawTextCentered(0, title, core.ColorBrightCyan)

	parts := []string{
		fmt.Sprintf("Level %d/%d", p.Level+1, p.Levels),
		fmt.Sprintf("Found %d/%d", p.Found, p.Total),
	}
	if p.TimerEnabled {
		parts = append(parts, fmt.Sprintf("Time %d:%02d", p.TimeLeft/60, p.TimeLeft%60))
	}
	parts = append(parts, fmt.Sprintf("Stars %d", p.TotalStars))
	dst.DrawTextCentered(1, strings.Join(parts, "   "), core.ColorDefault)
}

// renderGrid draws the border, letters and highlights.
func (g *Game) renderGrid(dst *core.Screen) {
	grid := g.session.Grid()
	size := grid.Size()
	box := core.NewRect(g.layout.gridX-2, g.layout.gridY-1, size*cellWidth-1+4, size+2)
	dst.DrawBox(box, core.ColorGray)

	p := g.session.CurrentProgress()
	selected := make(map[puzzle.Cell]bool)
	for _, c := range g.session.SelectionCells() {
		selected[c] = true
	}
	anchor, _, selecting := g.session.Selection()

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cell := puzzle.At(r, c)
			ch := rune(grid.Letter(cell))
			if p.Paused {
				ch = '·'
			}

			color := core.ColorDefault
			switch {
			case selecting && cell == anchor:
				color = core.ColorBrightCyan
			case selected[cell]:
				color = core.ColorCyan
			case g.session.Found().Covers(cell):
				color = core.ColorGreen
			}
			if cell == g.cursor && !p.Submitted && !p.GameOver {
				color = core.ColorBrightYellow
			}

			dst.SetColored(g.layout.gridX+c*cellWidth, g.layout.gridY+r, ch, color)
		}
	}
}

// renderWordList draws the words beside the grid, wrapping into more
// columns when the list is taller than the grid.
func (g *Game) renderWordList(dst *core.Screen) {
	words := g.session.Words()
	found := g.session.Found()
	colW := wordColumnWidth(words)
	rows := max(g.layout.listRows, 1)

	for i, w := range words {
		x := g.layout.listX + (i/rows)*colW
		y := g.layout.gridY + i%rows
		if found.Contains(w) {
			dst.DrawTextColored(x, y, "✓ "+w, core.ColorGreen)
		} else {
			dst.DrawText(x, y, "  "+w)
		}
	}
}

// renderStatus draws the pause, result and game over lines under the grid.
func (g *Game) renderStatus(dst *core.Screen) {
	p := g.session.CurrentProgress()
	y := g.layout.gridY + g.session.Grid().Size() + 1

	switch {
	case p.GameOver:
		msg := fmt.Sprintf("All levels done! %.1f stars average. R to restart", g.session.AverageStars())
		dst.DrawTextCentered(y, msg, core.ColorBrightYellow)
	case p.Submitted:
		msg := fmt.Sprintf("Level %d: %s  (%d/%d words)", p.Level+1, starString(p.Stars), p.Found, p.Total)
		dst.DrawTextCentered(y, msg, core.ColorBrightYellow)
	case p.Paused:
		dst.DrawTextCentered(y, "PAUSED (P to resume)", core.ColorYellow)
	}
}

// starString renders a rating as filled and empty stars.
func starString(n int) string {
	n = core.Clamp(n, 0, puzzle.MaxStars)
	return strings.Repeat("★", n) + strings.Repeat("☆", puzzle.MaxStars-n)
}

// wordColumnWidth is the width of one word list column: check mark, space,
// the longest word and a gap.
func wordColumnWidth(words []string) int {
	return lo.Max(lo.Map(words, func(w string, _ int) int { return len(w) })) + 3
}
