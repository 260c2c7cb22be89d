package cfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/brewos-io/logotool/lvgl"
)

const bytesPerLine = 16

// Write emits the generated C source for m; a header comment, dimension
// defines, the data array and the lv_img_dsc_t descriptor. name is the
// identifier stem (e.g. "logo_splash") and source names where the image
// came from.
func Write(w io.Writer, m *lvgl.Image, name, source string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "// Auto-generated logo image for splash screen\n")
	fmt.Fprintf(bw, "// Generated from %s\n", source)
	if n := m.PaletteSize(); n > 0 {
		fmt.Fprintf(bw, "// Compressed using indexed color format (%d colors, %d-bit indices)\n", n, m.Format.BitWidth())
		fmt.Fprintf(bw, "// Format: palette (%d * 2 bytes) + indices (%d bytes) = %d bytes\n", n, m.DataSize()-n*2, m.DataSize())
	} else {
		fmt.Fprintf(bw, "// Format: %s (%d bytes)\n", m.Format.CName(), m.DataSize())
	}
	fmt.Fprintf(bw, "#include <lvgl.h>\n\n")

	upper := strings.ToUpper(name)
	fmt.Fprintf(bw, "#define %s_WIDTH %d\n", upper, m.Width)
	fmt.Fprintf(bw, "#define %s_HEIGHT %d\n\n", upper, m.Height)

	fmt.Fprintf(bw, "static const uint8_t %s_data[] = {\n", name)
	if n := m.PaletteSize(); n > 0 {
		fmt.Fprintf(bw, "    // Palette: %d colors as little-endian uint16_t\n", n)
		writeBytes(bw, m.Data[:n*2])
		fmt.Fprintf(bw, "    // Indices: %d pixels packed as %d-bit values\n", m.Width*m.Height, m.Format.BitWidth())
		writeBytes(bw, m.Data[n*2:])
	} else {
		writeBytes(bw, m.Data)
	}
	fmt.Fprintf(bw, "};\n\n")

	fmt.Fprintf(bw, "const lv_img_dsc_t %s_img = {\n", name)
	fmt.Fprintf(bw, "    .header = {\n")
	fmt.Fprintf(bw, "        .cf = %s,\n", m.Format.CName())
	fmt.Fprintf(bw, "        .w = %d,\n", m.Width)
	fmt.Fprintf(bw, "        .h = %d,\n", m.Height)
	fmt.Fprintf(bw, "    },\n")
	fmt.Fprintf(bw, "    .data_size = %d,\n", m.DataSize())
	fmt.Fprintf(bw, "    .data = %s_data,\n", name)
	fmt.Fprintf(bw, "};\n")

	return bw.Flush()
}

func writeBytes(w io.Writer, data []byte) {
	var line [bytesPerLine]string
	for i := 0; i < len(data); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		for j, b := range data[i:end] {
			line[j] = fmt.Sprintf("0x%02X", b)
		}
		fmt.Fprintf(w, "    %s,\n", strings.Join(line[:end-i], ", "))
	}
}
