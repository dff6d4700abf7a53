package scr

import (
	"image"
	"image/color"
)

// Screen is a ZX Spectrum screen dump. It implements the image.PalettedImage
// interface using Palette.
type Screen [Size]byte

func (s *Screen) bitmap() []byte {
	return s[:bitmapBytes]
}

func (s *Screen) attributes() []byte {
	return s[bitmapBytes:]
}

// Attribute returns the attribute of the cell covering row y and cell column
// cx.
func (s *Screen) Attribute(y, cx int) Attribute {
	return Attribute(s.attributes()[attributeOffset(y, cx)])
}

// Pixels returns the eight pixels of row y in cell column cx, the leftmost
// pixel in the most significant bit.
func (s *Screen) Pixels(y, cx int) byte {
	return s.bitmap()[pixelOffset(y, cx)]
}

// PackedRow appends row y as 4-bit palette indices to dst and returns the
// extended slice. Each byte holds two pixels, the leftmost in the upper
// nibble.
func (s *Screen) PackedRow(dst []byte, y int) []byte {
	for cx := 0; cx < cellX; cx++ {
		ink, paper := s.Attribute(y, cx).Colors()
		bits := s.Pixels(y, cx)
		for i := 0; i < cellWidth>>1; i++ {
			pair := bits >> (2 * (3 - i))
			dst = append(dst, choose(pair&2, ink, paper)<<4|choose(pair&1, ink, paper))
		}
	}
	return dst
}

func choose(bit byte, ink, paper uint8) uint8 {
	if bit != 0 {
		return ink
	}
	return paper
}

// ColorModel returns Palette.
func (s *Screen) ColorModel() color.Model {
	return Palette
}

// Bounds returns the fixed 256 by 192 rectangle.
func (s *Screen) Bounds() image.Rectangle {
	return image.Rect(0, 0, pixelX, pixelY)
}

// At returns the color of the pixel at (x, y).
func (s *Screen) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(s.Bounds())) {
		return color.RGBA{}
	}
	return Palette[s.ColorIndexAt(x, y)]
}

// ColorIndexAt returns the palette index of the pixel at (x, y).
func (s *Screen) ColorIndexAt(x, y int) uint8 {
	if !(image.Point{x, y}.In(s.Bounds())) {
		return 0
	}
	cx := x / cellWidth
	ink, paper := s.Attribute(y, cx).Colors()
	return choose(s.Pixels(y, cx)>>(cellWidth-1-x%cellWidth)&1, ink, paper)
}
