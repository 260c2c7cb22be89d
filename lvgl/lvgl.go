/*
Package lvgl implements the LVGL image payload formats used for the
splash-screen logo.

An indexed image is stored as a palette of up to 256 RGB565 colors, each
written as a little-endian 16-bit value, immediately followed by the pixel
indices packed most-significant-bit first at 1, 2, 4 or 8 bits per pixel.
The trailing partial byte, if any, is padded with zero bits. A true-color
image stores the raw little-endian RGB565 pixels and carries no palette. A
raw image wraps an already-encoded blob (e.g. a PNG file) that the firmware
decodes itself.
*/
package lvgl

import (
	"errors"

	"github.com/brewos-io/logotool/rgb565"
)

// Format is the LVGL color format tag recorded in the image descriptor.
type Format int

const (
	FormatRaw Format = iota
	FormatTrueColor
	FormatIndexed1
	FormatIndexed2
	FormatIndexed4
	FormatIndexed8
)

var formatNames = map[Format]string{
	FormatRaw:       "LV_IMG_CF_RAW",
	FormatTrueColor: "LV_IMG_CF_TRUE_COLOR",
	FormatIndexed1:  "LV_IMG_CF_INDEXED_1BIT",
	FormatIndexed2:  "LV_IMG_CF_INDEXED_2BIT",
	FormatIndexed4:  "LV_IMG_CF_INDEXED_4BIT",
	FormatIndexed8:  "LV_IMG_CF_INDEXED_8BIT",
}

// CName returns the LVGL constant naming the format tag.
func (f Format) CName() string {
	return formatNames[f]
}

// BitWidth returns the packing width of an indexed format, or 0 for the
// non-indexed formats.
func (f Format) BitWidth() int {
	switch f {
	case FormatIndexed1:
		return 1
	case FormatIndexed2:
		return 2
	case FormatIndexed4:
		return 4
	case FormatIndexed8:
		return 8
	}
	return 0
}

// Indexed reports whether f is one of the palette-indexed formats.
func (f Format) Indexed() bool {
	return f.BitWidth() != 0
}

var errNotIndexed = errors.New("lvgl: image is not palette indexed")

// Image is an encoded image payload plus the fields of its descriptor.
// It is produced once per run and never mutated.
type Image struct {
	Format Format
	Width  int
	Height int
	Data   []byte
}

// DataSize returns the total payload size in bytes.
func (m *Image) DataSize() int {
	return len(m.Data)
}

// PaletteSize returns the number of palette entries held in the payload of
// an indexed image, or 0 for the non-indexed formats.
func (m *Image) PaletteSize() int {
	w := m.Format.BitWidth()
	if w == 0 {
		return 0
	}
	packed := packedSize(m.Width*m.Height, w)
	if packed > len(m.Data) {
		return 0
	}
	return (len(m.Data) - packed) / 2
}

// NewRaw wraps already-encoded data in a raw image. Width and height may be
// zero when the dimensions are not known.
func NewRaw(width, height int, data []byte) *Image {
	return &Image{
		Format: FormatRaw,
		Width:  width,
		Height: height,
		Data:   data,
	}
}

// Palette is an ordered sequence of unique RGB565 colors. The index of a
// color is its position in ascending numeric order, which keeps repeated
// runs over the same pixels byte-for-byte identical.
type Palette []rgb565.Color

// Bytes returns the palette in its wire form, each color little-endian.
func (p Palette) Bytes() []byte {
	b := make([]byte, 0, len(p)*2)
	for _, c := range p {
		b = c.AppendBytes(b)
	}
	return b
}
