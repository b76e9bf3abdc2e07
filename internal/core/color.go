package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color style.
type Color uint8

// Predefined colors. Tier colors run from cool to hot so the board reads
// at a glance; the exact mapping lives with the game renderer.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorCyan
	ColorBlue
	ColorGreen
	ColorYellow
	ColorOrange
	ColorRed
	ColorMagenta
	ColorBrightMagenta
	ColorBrightYellow
	ColorBrightWhite
)
