package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorAzure       // #0095dd, the classic brick/paddle blue
	ColorTransparent // Nothing is drawn
)

// palette holds RGB values for pixel surfaces.
var palette = map[Color]color.RGBA{
	ColorDefault:       {R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	ColorRed:           {R: 0xcd, G: 0x00, B: 0x00, A: 0xff},
	ColorGreen:         {R: 0x00, G: 0xcd, B: 0x00, A: 0xff},
	ColorYellow:        {R: 0xcd, G: 0xcd, B: 0x00, A: 0xff},
	ColorBlue:          {R: 0x00, G: 0x00, B: 0xee, A: 0xff},
	ColorMagenta:       {R: 0xcd, G: 0x00, B: 0xcd, A: 0xff},
	ColorCyan:          {R: 0x00, G: 0xcd, B: 0xcd, A: 0xff},
	ColorWhite:         {R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
	ColorBrightRed:     {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	ColorBrightGreen:   {R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	ColorBrightYellow:  {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	ColorBrightBlue:    {R: 0x5c, G: 0x5c, B: 0xff, A: 0xff},
	ColorBrightMagenta: {R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	ColorBrightCyan:    {R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	ColorOrange:        {R: 0xff, G: 0x87, B: 0x00, A: 0xff},
	ColorGray:          {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
	ColorAzure:         {R: 0x00, G: 0x95, B: 0xdd, A: 0xff},
	ColorTransparent:   {},
}

// RGBA returns the color as an RGBA value for pixel surfaces.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[ColorDefault]
}

// Visible reports whether drawing with this color produces any output.
func (c Color) Visible() bool {
	return c != ColorTransparent
}

// ParseColor maps a config color name to a Color.
// Unknown names fall back to ColorDefault.
func ParseColor(name string) Color {
	switch name {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "magenta":
		return ColorMagenta
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	case "orange":
		return ColorOrange
	case "gray", "grey":
		return ColorGray
	case "azure", "#0095dd":
		return ColorAzure
	case "transparent":
		return ColorTransparent
	default:
		return ColorDefault
	}
}
