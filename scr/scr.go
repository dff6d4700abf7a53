/*
Package scr implements a ZX Spectrum screen dump decoder.

The format is defined as 256 by 192 pixels exactly which is split into 768
8 by 8 cells. Each cell has a single attribute byte selecting two colors,
ink and paper, from a fixed palette of 8 colors in either a normal or a
bright shade.

The file is 6912 bytes long; 6144 bytes of pixel information with one bit
per pixel followed by 768 bytes of attributes, one per cell. The pixel rows
are not stored in order, see pixelOffset.
*/
package scr

const (
	cellWidth   = 8
	cellHeight  = cellWidth
	cellX       = 32
	cellY       = 24
	numCells    = cellX * cellY
	pixelX      = cellWidth * cellX
	pixelY      = cellHeight * cellY
	bitmapBytes = pixelX * pixelY >> 3
	attrBytes   = numCells
)

const (
	// Width is the width of a screen in pixels
	Width = pixelX
	// Height is the height of a screen in pixels
	Height = pixelY
	// Size defines the expected size in bytes of a screen dump
	Size = bitmapBytes + attrBytes
	// RowBytes is the length of a row of 4-bit packed pixels
	RowBytes = pixelX >> 1
)
