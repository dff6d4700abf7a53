/*
Package bmp implements a ZX Spectrum screen encoder for the Windows bitmap
format.

The output is always an uncompressed 256 by 192 bitmap with 4 bits per pixel
and a 16 color palette; a 14 byte file header, a 40 byte BITMAPINFOHEADER,
the palette as 16 BGR0 entries and finally the pixel rows stored bottom-up.
The resulting file is always 24694 bytes in size.
*/
package bmp

import "github.com/bodgit/scr2bmp/scr"

const (
	fileHeaderSize   = 14
	infoHeaderSize   = 40
	bitsPerPixel     = 4
	colorsPerPalette = 1 << bitsPerPixel
	paletteSize      = colorsPerPalette * 4
	pixelOffset      = fileHeaderSize + infoHeaderSize + paletteSize
	pixelBytes       = scr.RowBytes * scr.Height

	// Size is the size in bytes of every encoded screen
	Size = pixelOffset + pixelBytes
)

type fileHeader struct {
	Type      [2]byte
	Size      uint32
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32
}

type infoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPelsPerMeter   int32
	YPelsPerMeter   int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

var (
	header = fileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    Size,
		OffBits: pixelOffset,
	}
	info = infoHeader{
		Size:      infoHeaderSize,
		Width:     scr.Width,
		Height:    scr.Height,
		Planes:    1,
		BitCount:  bitsPerPixel,
		SizeImage: pixelBytes,
	}
)
