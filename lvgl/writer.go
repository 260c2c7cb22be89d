package lvgl

import "github.com/brewos-io/logotool/rgb565"

// EncodeIndexed converts pixels in row-major order to an indexed image; the
// palette followed by the packed indices. It fails with ErrTooManyColors
// when the pixels hold more than MaxColors distinct values.
func EncodeIndexed(width, height int, pixels []rgb565.Color) (*Image, error) {
	palette, indices, err := BuildPalette(pixels)
	if err != nil {
		return nil, err
	}

	packed, err := Pack(indices, WidthFor(len(palette)))
	if err != nil {
		return nil, err
	}

	return &Image{
		Format: FormatFor(len(palette)),
		Width:  width,
		Height: height,
		Data:   append(palette.Bytes(), packed...),
	}, nil
}

// EncodeTrueColor converts pixels in row-major order to a true-color image;
// two little-endian bytes per pixel, no palette.
func EncodeTrueColor(width, height int, pixels []rgb565.Color) *Image {
	data := make([]byte, 0, len(pixels)*2)
	for _, c := range pixels {
		data = c.AppendBytes(data)
	}

	return &Image{
		Format: FormatTrueColor,
		Width:  width,
		Height: height,
		Data:   data,
	}
}
