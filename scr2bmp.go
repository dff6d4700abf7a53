/*
Package scr2bmp is a library for converting ZX Spectrum screen dumps into
Windows bitmaps.
*/
package scr2bmp

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/scr2bmp/bmp"
	"github.com/bodgit/scr2bmp/scr"
)

// Converter converts screen dumps, reporting any non-fatal problems with the
// input to its logger.
type Converter struct {
	logger *log.Logger
}

// New returns a Converter logging to logger. A nil logger discards
// everything.
func New(logger *log.Logger) *Converter {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Converter{
		logger: logger,
	}
}

func (c *Converter) read(r io.Reader) (*scr.Screen, error) {
	s, err := scr.Read(r)
	switch {
	case err == nil:
	case err == scr.ErrTrailingData:
		c.logger.Println("Warning: extra data at end of input, is it a valid screen?")
	case scr.IsWarning(err):
		c.logger.Printf("Non fatal error: ambiguity near end of input: %v\n", err)
	default:
		return nil, err
	}
	return s, nil
}

// Convert reads a screen dump from r and writes it to w as a bitmap.
func (c *Converter) Convert(r io.Reader, w io.Writer) error {
	s, err := c.read(r)
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	if err := bmp.Encode(w, s); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	return nil
}

// ConvertFile converts the screen dump in file in and writes the bitmap to
// file out, creating or truncating it. The input is read in full before out
// is touched.
func (c *Converter) ConvertFile(in, out string) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := c.read(f)
	if err != nil {
		return fmt.Errorf("error reading input file %s: %w", in, err)
	}

	o, err := os.Create(out)
	if err != nil {
		return err
	}

	if err := bmp.Encode(o, s); err != nil {
		o.Close()
		return fmt.Errorf("error writing output file %s: %w", out, err)
	}

	if err := o.Close(); err != nil {
		return fmt.Errorf("error writing output file %s: %w", out, err)
	}

	return nil
}
