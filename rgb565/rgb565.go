/*
Package rgb565 implements the 16-bit RGB565 color encoding used by the
display panel; 5 bits of red, 6 bits of green and 5 bits of blue packed
into a single 16-bit value.
*/
package rgb565

import "image/color"

// Color is a packed RGB565 value.
type Color uint16

const (
	Black Color = 0x0000
	White Color = 0xffff
)

// From converts 8-bit RGB channels by truncating each to its 5-6-5 width.
func From(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// FromColor converts any color.Color, discarding alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return From(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGBA implements color.Color. Channels are widened back to 8 bits by bit
// replication so that full-scale values map to full-scale.
func (c Color) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c >> 11 & 0x1f)
	g6 := uint32(c >> 5 & 0x3f)
	b5 := uint32(c & 0x1f)

	r = r5<<3 | r5>>2
	g = g6<<2 | g6>>4
	b = b5<<3 | b5>>2

	r |= r << 8
	g |= g << 8
	b |= b << 8
	a = 0xffff

	return
}

// Model converts colors to the RGB565 color model.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// AppendBytes appends the little-endian wire form of c to p.
func (c Color) AppendBytes(p []byte) []byte {
	return append(p, byte(c), byte(c>>8))
}

// FromBytes reassembles a color from its little-endian wire form.
func FromBytes(lo, hi byte) Color {
	return Color(uint16(hi)<<8 | uint16(lo))
}
