package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth = 2 // Each board cell is drawn two characters wide

	wellW  = Width*cellWidth + 2 // +2 for the side walls
	wellH  = Height + 2          // +2 for top and bottom walls
	panelW = 16
	gap    = 2
)

// kindColors maps each tetromino to its display color.
var kindColors = map[Kind]core.Color{
	I: core.ColorCyan,
	O: core.ColorYellow,
	T: core.ColorMagenta,
	S: core.ColorGreen,
	Z: core.ColorRed,
	J: core.ColorBlue,
	L: core.ColorOrange,
}

// ColorOf returns the display color for a kind.
func ColorOf(k Kind) core.Color {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return core.ColorDefault
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.engine == nil {
		return
	}

	snap := g.engine.Snapshot()
	area := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(wellW+gap+panelW, wellH)
	well := core.NewRect(area.X, area.Y, wellW, wellH)

	RenderWell(dst, well, snap)
	renderPanel(dst, well.Right()+gap, well.Y, snap)

	switch {
	case snap.GameOver:
		renderOverlay(dst, well, "GAME OVER", "Press R to restart")
	case g.paused:
		renderOverlay(dst, well, "PAUSED", "Press P to resume")
	}
}

// RenderWell draws the walls and the board with the active piece overlaid.
// The snapshot's board is not modified.
func RenderWell(dst *core.Screen, well core.Rect, snap Snapshot) {
	dst.DrawBox(well, core.ColorGray)

	inner := well.Inner()
	grid := snap.Composite()
	for y := range Height {
		for x := range Width {
			sx := inner.X + x*cellWidth
			sy := inner.Y + y
			if k := grid[y][x]; k != Empty {
				c := ColorOf(k)
				dst.SetColored(sx, sy, '█', c)
				dst.SetColored(sx+1, sy, '█', c)
				continue
			}
			dst.SetColored(sx+1, sy, '·', core.ColorGray)
		}
	}
}

// renderPanel draws the title, stats and next-piece preview.
func renderPanel(dst *core.Screen, x, y int, snap Snapshot) {
	dst.DrawTextColored(x, y, "T E T R I S", core.ColorMagenta)

	stats := snap.Stats()
	rows := []struct {
		label string
		value int
		color core.Color
	}{
		{"Score", stats.Score, core.ColorYellow},
		{"Level", stats.Level, core.ColorGreen},
		{"Lines", stats.Lines, core.ColorBlue},
	}
	for i, r := range rows {
		ry := y + 2 + i*3
		dst.DrawTextColored(x, ry, r.label, core.ColorGray)
		dst.DrawTextColored(x, ry+1, fmt.Sprintf("%d", r.value), r.color)
	}

	ny := y + 11
	dst.DrawTextColored(x, ny, "Next", core.ColorGray)
	if snap.Next != nil {
		c := ColorOf(snap.Next.Kind)
		snap.Next.Shape.each(func(cx, cy int) {
			dst.SetColored(x+cx*cellWidth, ny+1+cy, '█', c)
			dst.SetColored(x+cx*cellWidth+1, ny+1+cy, '█', c)
		})
	}
}

// renderOverlay draws a framed two-line message centered on the well.
func renderOverlay(dst *core.Screen, well core.Rect, line1, line2 string) {
	w := core.Max(len(line1), len(line2)) + 4
	box := well.Centered(w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColored(box.X+(w-len(line1))/2, box.Y+1, line1, core.ColorRed)
	dst.DrawText(box.X+(w-len(line2))/2, box.Y+3, line2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}
