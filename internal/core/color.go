package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for world elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPurple
	ColorTeal
)

// PlatformPalette is the set of colors answer platforms are drawn in.
var PlatformPalette = []Color{
	ColorBrightBlue,
	ColorPurple,
	ColorOrange,
	ColorTeal,
	ColorBrightYellow,
	ColorCyan,
	ColorBrightRed,
	ColorBrightGreen,
}
