package scr

// pixelOffset returns the offset into the pixel data of the byte holding the
// eight pixels of row y in cell column cx. Bits 0-2 and 3-5 of y swap
// places so the display memory steps through the pixel rows of a cell
// before moving on to the next row of cells; bits 6-7 pick the third of the
// screen.
func pixelOffset(y, cx int) int {
	return (y&0x07<<3|y&0x38>>3|y&0xc0)<<5 | cx
}

// attributeOffset returns the offset into the attribute data of the cell
// covering row y and cell column cx.
func attributeOffset(y, cx int) int {
	return y&0xf8<<2 + cx
}
