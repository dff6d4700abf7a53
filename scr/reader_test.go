package scr

import (
	"bytes"
	"errors"
	"image"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errProbe = errors.New("probe failed")

type failAfter struct {
	r io.Reader
}

func (f *failAfter) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	if err == io.EOF {
		return n, errProbe
	}
	return n, err
}

func testData(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestRead(t *testing.T) {
	b := testData(Size)

	s, err := Read(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, b, s[:])

	s, err = Read(iotest.OneByteReader(bytes.NewReader(b)))
	require.NoError(t, err)
	assert.Equal(t, b, s[:])
}

func TestReadTrailingData(t *testing.T) {
	b := testData(Size + 1)
	r := bytes.NewReader(b)

	s, err := Read(r)
	require.NotNil(t, s)
	assert.Equal(t, ErrTrailingData, err)
	assert.True(t, IsWarning(err))
	assert.Equal(t, b[:Size], s[:])
	assert.Equal(t, 0, r.Len())
}

func TestReadProbeError(t *testing.T) {
	s, err := Read(&failAfter{bytes.NewReader(testData(Size))})
	require.NotNil(t, s)
	require.Error(t, err)
	assert.True(t, IsWarning(err))
	assert.True(t, errors.Is(err, errProbe))

	var pe *ProbeError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Error(), errProbe.Error())
}

func TestReadNotEnough(t *testing.T) {
	for _, n := range []int{0, 1, bitmapBytes, Size - 1} {
		s, err := Read(bytes.NewReader(testData(n)))
		assert.Nil(t, s)
		assert.True(t, errors.Is(err, errNotEnough), "%d bytes", n)
		assert.False(t, IsWarning(err))
	}

	s, err := Read(iotest.TimeoutReader(iotest.OneByteReader(bytes.NewReader(testData(Size)))))
	assert.Nil(t, s)
	assert.True(t, errors.Is(err, errNotEnough))
	assert.Contains(t, err.Error(), iotest.ErrTimeout.Error())
}

func TestDecode(t *testing.T) {
	b := testData(Size + 1)

	m, err := Decode(bytes.NewReader(b))
	require.NoError(t, err)

	pm, ok := m.(*image.Paletted)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, Width, Height), pm.Bounds())

	s, err := Read(bytes.NewReader(b[:Size]))
	require.NoError(t, err)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if !assert.Equal(t, s.ColorIndexAt(x, y), pm.ColorIndexAt(x, y)) {
				return
			}
		}
	}

	_, err = Decode(bytes.NewReader(b[:Size-1]))
	assert.Error(t, err)
}

func TestDecodeConfig(t *testing.T) {
	c, err := DecodeConfig(bytes.NewReader(testData(Size)))
	require.NoError(t, err)
	assert.Equal(t, Width, c.Width)
	assert.Equal(t, Height, c.Height)
	assert.Equal(t, Palette, c.ColorModel)

	_, err = DecodeConfig(bytes.NewReader(testData(10)))
	assert.Error(t, err)
}
