package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// palette is indexed by core.Color. Bright ANSI codes keep pieces readable
// on dark terminals.
var palette = [...]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     fg("9"),
	core.ColorGreen:   fg("10"),
	core.ColorYellow:  fg("11"),
	core.ColorBlue:    fg("12"),
	core.ColorMagenta: fg("13"),
	core.ColorCyan:    fg("14"),
	core.ColorWhite:   fg("15"),
	core.ColorOrange:  fg("208"),
	core.ColorGray:    fg("240"),
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// styleFor returns the style for c, falling back to unstyled text.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	for y := range lines {
		lines[y] = renderRow(s, y)
	}
	return strings.Join(lines, "\n")
}

// renderRow styles one row with a single escape sequence per run of
// same-colored cells.
func renderRow(s *core.Screen, y int) string {
	var line, run strings.Builder
	cur := core.ColorDefault

	flush := func() {
		if run.Len() == 0 {
			return
		}
		line.WriteString(styleFor(cur).Render(run.String()))
		run.Reset()
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != cur {
			flush()
			cur = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()

	return line.String()
}
