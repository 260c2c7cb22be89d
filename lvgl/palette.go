package lvgl

import (
	"errors"
	"sort"

	"github.com/brewos-io/logotool/rgb565"
)

// MaxColors is the largest palette the indexed formats can address.
const MaxColors = 256

// ErrTooManyColors is returned when an image holds more distinct RGB565
// values than an 8-bit index can reach.
var ErrTooManyColors = errors.New("lvgl: more than 256 distinct colors; reduce the color count or use true color")

// BuildPalette deduplicates pixels into a sorted palette and returns one
// palette index per pixel.
func BuildPalette(pixels []rgb565.Color) (Palette, []uint8, error) {
	seen := make(map[rgb565.Color]struct{})
	for _, c := range pixels {
		seen[c] = struct{}{}
	}
	if len(seen) > MaxColors {
		return nil, nil, ErrTooManyColors
	}

	p := make(Palette, 0, len(seen))
	for c := range seen {
		p = append(p, c)
	}
	sort.Slice(p, func(i, j int) bool { return p[i] < p[j] })

	lookup := make(map[rgb565.Color]uint8, len(p))
	for i, c := range p {
		lookup[c] = uint8(i)
	}

	indices := make([]uint8, len(pixels))
	for i, c := range pixels {
		indices[i] = lookup[c]
	}

	return p, indices, nil
}

// WidthFor returns the minimal packing width covering n palette entries.
func WidthFor(n int) int {
	switch {
	case n <= 2:
		return 1
	case n <= 4:
		return 2
	case n <= 16:
		return 4
	default:
		return 8
	}
}

// FormatFor returns the indexed format matching WidthFor(n).
func FormatFor(n int) Format {
	switch WidthFor(n) {
	case 1:
		return FormatIndexed1
	case 2:
		return FormatIndexed2
	case 4:
		return FormatIndexed4
	default:
		return FormatIndexed8
	}
}
