package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rong/internal/core"
)

// ansiColors maps core.Color to terminal color codes. ColorDefault has none.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:       lipgloss.Color("0"),
	core.ColorWhite:       lipgloss.Color("7"),
	core.ColorBrightWhite: lipgloss.Color("15"),
	core.ColorGray:        lipgloss.Color("245"),
	core.ColorYellow:      lipgloss.Color("3"),
}

// cellStyle selects a style by foreground and background color.
type cellStyle struct {
	fg, bg core.Color
}

// cellStyles holds every foreground/background combination. It is built once
// and only read afterwards, so concurrent SSH sessions can share it.
var cellStyles = buildCellStyles()

func buildCellStyles() map[cellStyle]lipgloss.Style {
	colors := []core.Color{core.ColorDefault}
	for c := range ansiColors {
		colors = append(colors, c)
	}

	styles := make(map[cellStyle]lipgloss.Style, len(colors)*len(colors))
	for _, fg := range colors {
		for _, bg := range colors {
			style := lipgloss.NewStyle()
			if c, ok := ansiColors[fg]; ok {
				style = style.Foreground(c)
			}
			if c, ok := ansiColors[bg]; ok {
				style = style.Background(c)
			}
			styles[cellStyle{fg: fg, bg: bg}] = style
		}
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.Color, bg: cell.Background}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Color, bg: cell.Background}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := cellStyles[key]
			if !ok {
				style = lipgloss.NewStyle()
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
