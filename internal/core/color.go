package core

// Color is the foreground color of a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

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
	ColorOrange
	ColorGray
	ColorDim
)

// Scene palette.
const (
	ColorActor    = ColorBrightGreen
	ColorFast     = ColorBrightRed
	ColorTank     = ColorMagenta
	ColorPickup   = ColorBrightYellow
	ColorTerrain  = ColorGray
	ColorMelee    = ColorOrange
	ColorHUD      = ColorWhite
	ColorSunlight = ColorYellow
	ColorMoon     = ColorCyan
)
