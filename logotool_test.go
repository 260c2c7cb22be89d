package logotool

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewos-io/logotool/rgb565"
)

func testConverter() *Converter {
	return New(log.New(io.Discard, "", 0))
}

// writePNG encodes img to a fresh file under dir and returns its path.
func writePNG(t *testing.T, dir string, img image.Image) string {
	t.Helper()

	path := filepath.Join(dir, "logo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, img))
	return path
}

// twoColorLogo is a 4x4 white square on a fully transparent background.
func twoColorLogo() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 1; y < 3; y++ {
		for x := 1; x < 3; x++ {
			img.Set(x, y, color.NRGBA{0xff, 0xff, 0xff, 0xff})
		}
	}
	return img
}

func TestFlattenOnBlack(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{0xc8, 0x64, 0x32, 0x00}) // transparent, RGB ignored
	img.Set(1, 0, color.NRGBA{0x10, 0x20, 0x30, 0xff})

	flat := flattenOnBlack(img)

	assert.Equal(t, color.RGBA{0x00, 0x00, 0x00, 0xff}, flat.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0xff}, flat.RGBAAt(1, 0))
}

func TestPixelsRowMajor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{0xff, 0x00, 0x00, 0xff})
	img.Set(1, 0, color.RGBA{0x00, 0xff, 0x00, 0xff})
	img.Set(0, 1, color.RGBA{0x00, 0x00, 0xff, 0xff})
	img.Set(1, 1, color.RGBA{0xff, 0xff, 0xff, 0xff})

	assert.Equal(t, []rgb565.Color{0xf800, 0x07e0, 0x001f, 0xffff}, Pixels(img))
}

func TestLoadImageResize(t *testing.T) {
	dir := t.TempDir()
	input := writePNG(t, dir, image.NewNRGBA(image.Rect(0, 0, 8, 8)))

	img, err := testConverter().LoadImage(input, 4)
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, 4, b.Dx())
	assert.Equal(t, 4, b.Dy())
}

func TestBackupOnce(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "logo_splash.c")
	c := testConverter()

	// No destination yet, nothing to back up.
	require.NoError(t, c.backupOnce(dest))
	_, err := os.Stat(dest + BackupSuffix)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, os.WriteFile(dest, []byte("first"), 0o644))
	require.NoError(t, c.backupOnce(dest))

	b, err := os.ReadFile(dest + BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, "first", string(b))

	// A later run must not replace the backup.
	require.NoError(t, os.WriteFile(dest, []byte("second"), 0o644))
	require.NoError(t, c.backupOnce(dest))

	b, err = os.ReadFile(dest + BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, "first", string(b))
}

func TestConvertIndexedEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := writePNG(t, dir, twoColorLogo())
	output := filepath.Join(dir, "logo_splash.c")

	err := testConverter().ConvertIndexed(input, output, Options{Size: 4})
	require.NoError(t, err)

	out, err := os.ReadFile(output)
	require.NoError(t, err)

	// Black background plus white logo packs at one bit per pixel.
	assert.Contains(t, string(out), "LV_IMG_CF_INDEXED_1BIT")
	assert.Contains(t, string(out), "#define LOGO_SPLASH_WIDTH 4")
	// 2 palette entries * 2 bytes + 16 pixels at 1 bit
	assert.Contains(t, string(out), ".data_size = 6")
}

func TestConvertTrueColorEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := writePNG(t, dir, twoColorLogo())
	output := filepath.Join(dir, "logo_splash.c")
	c := testConverter()

	require.NoError(t, c.ConvertTrueColor(input, output, Options{Size: 4}))

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(out), "LV_IMG_CF_TRUE_COLOR")
	assert.Contains(t, string(out), ".data_size = 32")

	// Re-running overwrites the destination and creates exactly one backup.
	require.NoError(t, c.ConvertTrueColor(input, output, Options{Size: 4}))
	b, err := os.ReadFile(output + BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, out, b)
}

func TestCompressEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := writePNG(t, dir, twoColorLogo())
	output := filepath.Join(dir, "logo_splash.c")
	c := testConverter()

	require.NoError(t, c.ConvertTrueColor(input, output, Options{Size: 4}))
	require.NoError(t, c.Compress(output, output, Options{Size: 4}))

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(out), "LV_IMG_CF_INDEXED_1BIT")

	// Compressing an already indexed file is refused.
	err = c.Compress(output, output, Options{Size: 4})
	assert.ErrorContains(t, err, "already in indexed format")
}

func TestCompressMissingInput(t *testing.T) {
	dir := t.TempDir()

	err := testConverter().Compress(filepath.Join(dir, "nope.c"), filepath.Join(dir, "out.c"), Options{})
	assert.Error(t, err)
}

// gradientLogo holds more distinct RGB565 values than an 8-bit index can
// address.
func gradientLogo() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 17, 17))
	for i := 0; i < 17*17; i++ {
		img.Set(i%17, i/17, color.NRGBA{
			R: uint8(i>>5) << 3,
			G: 0x00,
			B: uint8(i&0x1f) << 3,
			A: 0xff,
		})
	}
	return img
}

func TestConvertIndexedOverflow(t *testing.T) {
	dir := t.TempDir()
	input := writePNG(t, dir, gradientLogo())
	output := filepath.Join(dir, "logo_splash.c")

	err := testConverter().ConvertIndexed(input, output, Options{Size: 17})
	assert.Error(t, err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "no output on failure")
}

func TestConvertIndexedQuantized(t *testing.T) {
	dir := t.TempDir()
	input := writePNG(t, dir, gradientLogo())
	output := filepath.Join(dir, "logo_splash.c")

	err := testConverter().ConvertIndexed(input, output, Options{Size: 17, MaxColors: 16})
	require.NoError(t, err)

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(out), "LV_IMG_CF_INDEXED")
}

func TestEmbed(t *testing.T) {
	dir := t.TempDir()
	input := writePNG(t, dir, image.NewNRGBA(image.Rect(0, 0, 5, 3)))
	output := filepath.Join(dir, "logo_splash.c")

	require.NoError(t, testConverter().Embed(input, output, Options{}))

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(out), ".cf = LV_IMG_CF_RAW")
	assert.Contains(t, string(out), ".w = 5")
	assert.Contains(t, string(out), ".h = 3")
}

func TestEmbedNonPNG(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "blob.bin")
	require.NoError(t, os.WriteFile(input, []byte{0x01, 0x02, 0x03}, 0o644))
	output := filepath.Join(dir, "logo_splash.c")

	require.NoError(t, testConverter().Embed(input, output, Options{}))

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(out), ".w = 0")
	assert.Contains(t, string(out), ".data_size = 3")
}

func TestLoadImageMissing(t *testing.T) {
	_, err := testConverter().LoadImage(filepath.Join(t.TempDir(), "nope.png"), 4)
	assert.Error(t, err)
}

func TestPNGDimensions(t *testing.T) {
	_, _, ok := pngDimensions([]byte{0x01, 0x02})
	assert.False(t, ok)
}
