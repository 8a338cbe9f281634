package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quizjump/internal/core"
)

// Palette maps core.Color to lipgloss styles for one color scheme.
type Palette map[core.Color]lipgloss.Style

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// darkPalette suits dark terminal backgrounds.
var darkPalette = Palette{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           fg("1"),
	core.ColorGreen:         fg("2"),
	core.ColorYellow:        fg("3"),
	core.ColorBlue:          fg("4"),
	core.ColorMagenta:       fg("5"),
	core.ColorCyan:          fg("6"),
	core.ColorWhite:         fg("7"),
	core.ColorBrightRed:     fg("9"),
	core.ColorBrightGreen:   fg("10"),
	core.ColorBrightYellow:  fg("11"),
	core.ColorBrightBlue:    fg("12"),
	core.ColorBrightMagenta: fg("13"),
	core.ColorBrightCyan:    fg("14"),
	core.ColorBrightWhite:   fg("15"),
	core.ColorOrange:        fg("208"),
	core.ColorGray:          fg("245"),
	core.ColorPurple:        fg("135"),
	core.ColorTeal:          fg("43"),
}

// lightPalette trades the bright tones for deeper ones that stay readable
// on light backgrounds.
var lightPalette = Palette{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           fg("124"),
	core.ColorGreen:         fg("28"),
	core.ColorYellow:        fg("136"),
	core.ColorBlue:          fg("19"),
	core.ColorMagenta:       fg("90"),
	core.ColorCyan:          fg("30"),
	core.ColorWhite:         fg("240"),
	core.ColorBrightRed:     fg("160"),
	core.ColorBrightGreen:   fg("34"),
	core.ColorBrightYellow:  fg("172"),
	core.ColorBrightBlue:    fg("26"),
	core.ColorBrightMagenta: fg("127"),
	core.ColorBrightCyan:    fg("31"),
	core.ColorBrightWhite:   fg("235"),
	core.ColorOrange:        fg("166"),
	core.ColorGray:          fg("243"),
	core.ColorPurple:        fg("55"),
	core.ColorTeal:          fg("23"),
}

// PaletteFor returns the palette of a color scheme; unknown schemes get
// the light palette.
func PaletteFor(scheme string) Palette {
	if scheme == "dark" {
		return darkPalette
	}
	return lightPalette
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
