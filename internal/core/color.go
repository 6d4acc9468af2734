package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI color code.
type Color uint8

// Predefined colors for screen cells.
const (
	ColorDefault Color = iota
	ColorBlue
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorWhite
	ColorCyan
	ColorGray
)

// CodePalette lists the colors a code peg can take, indexed by color index.
// The order is part of the game: key 1 selects CodePalette[0], key 2 CodePalette[1], and so on.
var CodePalette = [...]Color{
	ColorBlue,
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorMagenta,
	ColorWhite,
	ColorCyan,
}

// PaletteSize is the number of renderable code colors.
const PaletteSize = len(CodePalette)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorWhite:
		return "white"
	case ColorCyan:
		return "cyan"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
