package core

// Color identifies a palette entry for a screen cell. The simulation core
// never interprets colors; the terminal renderer maps them to ANSI styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorBrightRed
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorBlue
	ColorCyan
	ColorMagenta
	ColorOrange
	ColorGray
	ColorWhite
	ColorBrightWhite
)
