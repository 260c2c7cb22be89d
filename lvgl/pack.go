package lvgl

import "fmt"

func checkWidth(width int) error {
	switch width {
	case 1, 2, 4, 8:
		return nil
	}
	return fmt.Errorf("lvgl: unsupported bit width %d", width)
}

func packedSize(n, width int) int {
	return (n*width + 7) / 8
}

// Pack stores indices most-significant-bit first at width bits per index, so
// the first index of each byte occupies its highest bits. width must be 1,
// 2, 4 or 8. The trailing partial byte is padded with zero bits.
func Pack(indices []uint8, width int) ([]byte, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}

	per := 8 / width
	mask := uint8(1<<width - 1)

	out := make([]byte, packedSize(len(indices), width))
	for i, idx := range indices {
		shift := uint(8 - (i%per+1)*width)
		out[i/per] |= (idx & mask) << shift
	}

	return out, nil
}

// Unpack recovers n indices from data packed at width bits per index. It is
// the exact inverse of Pack given the original index count.
func Unpack(data []byte, width, n int) ([]uint8, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	if len(data) < packedSize(n, width) {
		return nil, fmt.Errorf("lvgl: %d bytes of packed data, need %d for %d indices", len(data), packedSize(n, width), n)
	}

	per := 8 / width
	mask := uint8(1<<width - 1)

	out := make([]uint8, n)
	for i := range out {
		shift := uint(8 - (i%per+1)*width)
		out[i] = data[i/per] >> shift & mask
	}

	return out, nil
}
