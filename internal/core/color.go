package core

// Color is the foreground color of a screen cell. The terminal platform
// maps each value to an ANSI 256-color code.
type Color uint8

// Colors used by tiles, the HUD and overlays. Tile values climb roughly
// from the plain colors to the bright ones.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorMagenta
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray // Secondary text
)
