package logotool

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/disintegration/gift"

	"github.com/brewos-io/logotool/rgb565"
)

// LoadImage decodes the image at path, composites any transparency onto an
// opaque black background (the splash screen behind the logo is black) and
// resizes to size by size when the source resolution differs.
func (c *Converter) LoadImage(path string, size int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	b := src.Bounds()
	c.logger.Printf("Loaded %s image %dx%d from %s", format, b.Dx(), b.Dy(), path)

	img := flattenOnBlack(src)

	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		c.logger.Printf("Resizing from %dx%d to %dx%d", b.Dx(), b.Dy(), size, size)
		g := gift.New(gift.Resize(size, size, gift.LanczosResampling))
		dst := image.NewRGBA(g.Bounds(img.Bounds()))
		g.Draw(dst, img)
		img = dst
	}

	return img, nil
}

// flattenOnBlack composites img over opaque black, using its alpha channel
// as the blend weight. Fully opaque sources pass through unchanged.
func flattenOnBlack(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// Pixels converts img to RGB565 values in row-major order.
func Pixels(img image.Image) []rgb565.Color {
	b := img.Bounds()
	out := make([]rgb565.Color, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, rgb565.FromColor(img.At(x, y)))
		}
	}
	return out
}
