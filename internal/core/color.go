package core

// Color is a cell foreground color. Values map to ANSI codes in the platform
// layer; core only deals in the symbolic names.
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
	ColorBrightCyan
	ColorOrange
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault:    "default",
	ColorRed:        "red",
	ColorGreen:      "green",
	ColorYellow:     "yellow",
	ColorBlue:       "blue",
	ColorMagenta:    "magenta",
	ColorCyan:       "cyan",
	ColorWhite:      "white",
	ColorBrightCyan: "bright-cyan",
	ColorOrange:     "orange",
	ColorGray:       "gray",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}
