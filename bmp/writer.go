package bmp

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/bodgit/scr2bmp/scr"
)

type encoder struct {
	w *bufio.Writer
}

func (e *encoder) writeHeader() error {
	if err := binary.Write(e.w, binary.LittleEndian, &header); err != nil {
		return err
	}
	return binary.Write(e.w, binary.LittleEndian, &info)
}

func (e *encoder) writePalette() error {
	var tmp [4]byte
	for _, c := range scr.Palette {
		r, g, b, _ := c.RGBA()

		tmp[0] = byte(b >> 8)
		tmp[1] = byte(g >> 8)
		tmp[2] = byte(r >> 8)

		if _, err := e.w.Write(tmp[:]); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) writePixels(s *scr.Screen) error {
	row := make([]byte, 0, scr.RowBytes)
	// Bottom row first. Rows are already a multiple of 4 bytes so need no
	// padding
	for y := scr.Height - 1; y >= 0; y-- {
		row = s.PackedRow(row[:0], y)
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) encode(s *scr.Screen) error {
	if err := e.writeHeader(); err != nil {
		return err
	}

	if err := e.writePalette(); err != nil {
		return err
	}

	if err := e.writePixels(s); err != nil {
		return err
	}

	return e.w.Flush()
}

// Encode writes the screen s to w in Windows bitmap format.
func Encode(w io.Writer, s *scr.Screen) error {
	e := encoder{w: bufio.NewWriter(w)}

	return e.encode(s)
}
