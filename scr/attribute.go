package scr

import "image/color"

const (
	inkMask    = 0x07
	paperShift = 3
	indexMask  = 0x0f
	brightBit  = 0x08 // Bright flag once shifted into a palette index
	flashBit   = 0x80
)

// Attribute is the color attribute byte of a single cell. It is laid out as
// FBPPPIII; flash, bright, paper and ink.
type Attribute byte

// Paper returns the palette index of the cell background.
func (a Attribute) Paper() uint8 {
	return uint8(a) >> paperShift & indexMask
}

// Ink returns the palette index of the cell foreground. It shares the bright
// flag with the paper.
func (a Attribute) Ink() uint8 {
	return uint8(a)&inkMask | a.Paper()&brightBit
}

// Colors returns both the ink and paper palette indices.
func (a Attribute) Colors() (ink, paper uint8) {
	return a.Ink(), a.Paper()
}

// Bright reports whether the cell uses the bright shades.
func (a Attribute) Bright() bool {
	return a.Paper()&brightBit != 0
}

// Flash reports whether the cell swaps ink and paper periodically. This is
// not reproduced in a still image.
func (a Attribute) Flash() bool {
	return a&flashBit != 0
}

// Palette is the 16 color palette, indexed as GRB with bit 3 selecting the
// bright shade. This matches the indices returned by Attribute.
var Palette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff}, // Black
	color.RGBA{0x00, 0x17, 0xc6, 0xff}, // Blue
	color.RGBA{0xcd, 0x00, 0x00, 0xff}, // Red
	color.RGBA{0xcc, 0x00, 0xc5, 0xff}, // Magenta
	color.RGBA{0x00, 0xc4, 0x00, 0xff}, // Green
	color.RGBA{0x00, 0xc5, 0xc2, 0xff}, // Cyan
	color.RGBA{0xc2, 0xc0, 0x00, 0xff}, // Yellow
	color.RGBA{0xc1, 0xc1, 0xc1, 0xff}, // White
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0x00, 0x22, 0xff, 0xff},
	color.RGBA{0xff, 0x00, 0x00, 0xff},
	color.RGBA{0xff, 0x00, 0xff, 0xff},
	color.RGBA{0x00, 0xff, 0x00, 0xff},
	color.RGBA{0x00, 0xff, 0xff, 0xff},
	color.RGBA{0xff, 0xfd, 0x00, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
}
