package logotool

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/esimov/colorquant"
)

// floydSteinberg is the error diffusion filter applied when dithering is
// requested during requantization.
var floydSteinberg = colorquant.Dither{
	Filter: [][]float32{
		{0.0, 0.0, 0.0, 7.0 / 16.0, 0.0},
		{3.0 / 16.0, 5.0 / 16.0, 1.0 / 16.0, 0.0, 0.0},
	},
}

// reduceColors requantizes img down to at most max colors so it fits an
// indexed format.
func (c *Converter) reduceColors(img image.Image, max int, dither bool) image.Image {
	c.logger.Printf("Requantizing to at most %d colors (dither: %t)", max, dither)

	if dither {
		dst := image.NewPaletted(img.Bounds(), palette.WebSafe)
		return floydSteinberg.Quantize(img, dst, max, true, true)
	}

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(img.Bounds(), q.Quantize(make(color.Palette, 0, max), img))
	draw.Draw(pm, img.Bounds(), img, img.Bounds().Min, draw.Src)
	return pm
}
