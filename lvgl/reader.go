package lvgl

import (
	"errors"
	"fmt"

	"github.com/brewos-io/logotool/rgb565"
)

var errTruncated = errors.New("lvgl: payload too short for image dimensions")

// DecodeIndexed recovers the palette and pixels of an indexed image. The
// palette length is not recorded in the descriptor; it is whatever payload
// remains once the packed indices are accounted for.
func DecodeIndexed(m *Image) (Palette, []rgb565.Color, error) {
	width := m.Format.BitWidth()
	if width == 0 {
		return nil, nil, errNotIndexed
	}

	n := m.Width * m.Height
	packed := packedSize(n, width)
	if packed > len(m.Data) || (len(m.Data)-packed)%2 != 0 {
		return nil, nil, errTruncated
	}

	palette := make(Palette, (len(m.Data)-packed)/2)
	for i := range palette {
		palette[i] = rgb565.FromBytes(m.Data[2*i], m.Data[2*i+1])
	}

	indices, err := Unpack(m.Data[len(palette)*2:], width, n)
	if err != nil {
		return nil, nil, err
	}

	pixels := make([]rgb565.Color, n)
	for i, idx := range indices {
		if int(idx) >= len(palette) {
			return nil, nil, fmt.Errorf("lvgl: index %d beyond palette of %d colors", idx, len(palette))
		}
		pixels[i] = palette[idx]
	}

	return palette, pixels, nil
}

// DecodeTrueColor recovers the pixels of a true-color image.
func DecodeTrueColor(m *Image) ([]rgb565.Color, error) {
	if m.Format != FormatTrueColor {
		return nil, errors.New("lvgl: image is not true color")
	}

	n := m.Width * m.Height
	if len(m.Data) < n*2 {
		return nil, errTruncated
	}

	pixels := make([]rgb565.Color, n)
	for i := range pixels {
		pixels[i] = rgb565.FromBytes(m.Data[2*i], m.Data[2*i+1])
	}

	return pixels, nil
}
