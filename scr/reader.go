package scr

import (
	"errors"
	"fmt"
	"image"
	"io"
)

var (
	errNotEnough = errors.New("scr: not enough screen data")

	// ErrTrailingData is returned alongside a valid screen when more data
	// follows it
	ErrTrailingData = errors.New("scr: extra data at end of screen")
)

// ProbeError is returned alongside a valid screen when checking for data
// past the end of the screen failed with something other than io.EOF.
type ProbeError struct {
	Err error
}

func (e *ProbeError) Error() string {
	return "scr: ambiguous end of screen: " + e.Err.Error()
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// IsWarning reports whether err is one of the errors that Read returns
// together with a valid screen.
func IsWarning(err error) bool {
	var pe *ProbeError
	return errors.Is(err, ErrTrailingData) || errors.As(err, &pe)
}

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// Read reads a screen dump from r. At most one byte past the screen is
// consumed to detect trailing data; if found, or if that check fails, the
// screen is still returned along with ErrTrailingData or a *ProbeError
// respectively.
func Read(r io.Reader) (*Screen, error) {
	s := new(Screen)
	if err := readFull(r, s[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", errNotEnough, err)
	}

	var tmp [1]byte
	switch _, err := io.ReadFull(r, tmp[:]); err {
	case nil:
		return s, ErrTrailingData
	case io.EOF:
		return s, nil
	default:
		return s, &ProbeError{err}
	}
}

// Decode reads a ZX Spectrum screen from r and returns it as an
// image.Image. Any trailing data is ignored.
func Decode(r io.Reader) (image.Image, error) {
	s, err := Read(r)
	if s == nil {
		return nil, err
	}

	m := image.NewPaletted(s.Bounds(), Palette)
	for y := 0; y < pixelY; y++ {
		for x := 0; x < pixelX; x++ {
			m.SetColorIndex(x, y, s.ColorIndexAt(x, y))
		}
	}
	return m, nil
}

// DecodeConfig returns the color model and dimensions of a ZX Spectrum
// screen without decoding the entire screen.
func DecodeConfig(r io.Reader) (image.Config, error) {
	if s, err := Read(r); s == nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: Palette,
		Width:      pixelX,
		Height:     pixelY,
	}, nil
}
