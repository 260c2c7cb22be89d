package logotool

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brewos-io/logotool/cfile"
	"github.com/brewos-io/logotool/lvgl"
)

// ConvertIndexed converts the image at input into an indexed-color logo and
// writes the generated source to output. Images with more than 256 distinct
// RGB565 values are rejected unless Options.MaxColors requests a reduction.
func (c *Converter) ConvertIndexed(input, output string, opts Options) error {
	opts = opts.withDefaults()

	img, err := c.LoadImage(input, opts.Size)
	if err != nil {
		return err
	}
	if opts.MaxColors > 0 {
		img = c.reduceColors(img, opts.MaxColors, opts.Dither)
	}

	pixels := Pixels(img)
	b := img.Bounds()

	m, err := lvgl.EncodeIndexed(b.Dx(), b.Dy(), pixels)
	if err != nil {
		return err
	}

	c.logger.Printf("Converted %d pixels to RGB565 (%d unique colors)", len(pixels), m.PaletteSize())
	c.logStats(len(pixels), m)

	return c.write(m, opts.Name, filepath.Base(input), output)
}

// ConvertTrueColor converts the image at input into an uncompressed RGB565
// logo and writes the generated source to output.
func (c *Converter) ConvertTrueColor(input, output string, opts Options) error {
	opts = opts.withDefaults()

	img, err := c.LoadImage(input, opts.Size)
	if err != nil {
		return err
	}

	pixels := Pixels(img)
	b := img.Bounds()

	m := lvgl.EncodeTrueColor(b.Dx(), b.Dy(), pixels)
	c.logStats(len(pixels), m)

	return c.write(m, opts.Name, filepath.Base(input), output)
}

// Compress re-encodes a previously generated true-color source file into the
// indexed format, parsing the RGB565 values back out of its array literal.
func (c *Converter) Compress(input, output string, opts Options) error {
	opts = opts.withDefaults()

	content, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	if bytes.Contains(content, []byte("LV_IMG_CF_INDEXED")) {
		return fmt.Errorf("%s is already in indexed format", input)
	}

	decl, err := cfile.ParseArray(bytes.NewReader(content))
	if err != nil {
		return err
	}
	if decl.Skipped > 0 {
		c.logger.Printf("Skipped %d malformed values in %s", decl.Skipped, input)
	}
	c.logger.Printf("Found %d pixels in %s", len(decl.Values), decl.Name)

	if len(decl.Values) != opts.Size*opts.Size {
		c.logger.Printf("Warning: %d pixels does not match %dx%d", len(decl.Values), opts.Size, opts.Size)
	}

	m, err := lvgl.EncodeIndexed(opts.Size, opts.Size, decl.Values)
	if err != nil {
		return err
	}
	c.logStats(len(decl.Values), m)

	return c.write(m, opts.Name, filepath.Base(input), output)
}

// Embed copies the file at input verbatim into a raw-format logo source,
// leaving decoding to the firmware. PNG dimensions are read from the IHDR
// chunk when present; other content is embedded with zero dimensions.
func (c *Converter) Embed(input, output string, opts Options) error {
	opts = opts.withDefaults()

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	w, h, ok := pngDimensions(data)
	if ok {
		c.logger.Printf("PNG dimensions: %dx%d", w, h)
	} else {
		c.logger.Printf("Warning: could not parse PNG dimensions from %s", input)
	}

	m := lvgl.NewRaw(w, h, data)
	c.logger.Printf("File size: %d bytes (%.1f KB)", m.DataSize(), float64(m.DataSize())/1024)

	return c.write(m, opts.Name, filepath.Base(input), output)
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// pngDimensions pulls width and height out of a PNG IHDR chunk; big-endian
// 32-bit values at offsets 16 and 20.
func pngDimensions(data []byte) (int, int, bool) {
	if len(data) < 24 || !bytes.Equal(data[:8], pngSignature) {
		return 0, 0, false
	}
	w := binary.BigEndian.Uint32(data[16:20])
	h := binary.BigEndian.Uint32(data[20:24])
	return int(w), int(h), true
}

func (c *Converter) logStats(pixels int, m *lvgl.Image) {
	raw := pixels * 2
	c.logger.Printf("Original size: %d bytes (%.1f KB)", raw, float64(raw)/1024)
	if m.Format.Indexed() {
		c.logger.Printf("Compressed size: %d bytes (%.1f KB)", m.DataSize(), float64(m.DataSize())/1024)
		c.logger.Printf("Compression ratio: %.1fx", float64(raw)/float64(m.DataSize()))
	}
	c.logger.Printf("Using format: %s", m.Format.CName())
}

func (c *Converter) write(m *lvgl.Image, name, source, output string) error {
	if err := c.backupOnce(output); err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}

	if err := cfile.Write(f, m, name, source); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	c.logger.Printf("Logo written to: %s", output)
	return nil
}
