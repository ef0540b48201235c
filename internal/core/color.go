package core

// Color is a palette entry shared by every renderer.
// Platforms map it to their own color representation.
type Color uint8

// Palette used by the game.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorYellow
	ColorRed
	ColorGray
	ColorGreen
	ColorBlack
	ColorDim // background shading in the terminal
)

// String returns the palette name.
func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorYellow:
		return "yellow"
	case ColorRed:
		return "red"
	case ColorGray:
		return "gray"
	case ColorGreen:
		return "green"
	case ColorBlack:
		return "black"
	case ColorDim:
		return "dim"
	default:
		return "default"
	}
}

// RGBA returns the 8-bit components of the color.
func (c Color) RGBA() (r, g, b, a uint8) {
	switch c {
	case ColorWhite:
		return 255, 255, 255, 255
	case ColorYellow:
		return 255, 255, 0, 255
	case ColorRed:
		return 255, 0, 0, 255
	case ColorGray:
		return 200, 200, 200, 255
	case ColorGreen:
		return 0, 255, 0, 255
	case ColorDim:
		return 90, 90, 90, 255
	default:
		return 0, 0, 0, 255
	}
}
