package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

// Palette shared by every entity the game draws.
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
	ColorCount // Sentinel for sizing palettes
)

// Dim returns the next darker shade: bright colors drop to their base hue
// and base hues fade to gray. Used for fading particles.
func (c Color) Dim() Color {
	switch {
	case c >= ColorBrightRed && c <= ColorBrightWhite:
		return c - (ColorBrightRed - ColorRed)
	case c == ColorDefault, c == ColorGray:
		return c
	default:
		return ColorGray
	}
}
