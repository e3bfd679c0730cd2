package imageio

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryancarins/mandlebrot/mandelbrot"
)

func TestWriteRejectsMismatchedBuffer(t *testing.T) {
	err := Write(make([]uint32, 3), 2, 2, filepath.Join(t.TempDir(), "out.png"))
	assert.Error(t, err)
}

func TestWriteRejectsUnknownExtension(t *testing.T) {
	err := Write(make([]uint32, 4), 2, 2, filepath.Join(t.TempDir(), "out.gif"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image format")
}

func TestWritePNGRoundTrip(t *testing.T) {
	// Red, green, blue, white in the packed wire layout.
	buffer := []uint32{0x000000ff, 0x0000ff00, 0x00ff0000, 0x00ffffff}
	fileName := filepath.Join(t.TempDir(), "out.png")

	require.NoError(t, Write(buffer, 2, 2, fileName))

	file, err := os.Open(fileName)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)

	for row := 0; row < 2; row++ {
		for column := 0; column < 2; column++ {
			want := mandelbrot.UnpackRGB(buffer[row*2+column])
			r, g, b, _ := img.At(column, row).RGBA()
			assert.Equal(t, uint32(want.R), r>>8, "pixel (%d,%d) red", column, row)
			assert.Equal(t, uint32(want.G), g>>8, "pixel (%d,%d) green", column, row)
			assert.Equal(t, uint32(want.B), b>>8, "pixel (%d,%d) blue", column, row)
		}
	}
}

func TestWriteSupportedFormats(t *testing.T) {
	buffer := make([]uint32, 4)
	tmpDir := t.TempDir()

	for _, name := range []string{"out.png", "out.jpg", "out.jpeg", "out.bmp", "out.tif", "out.tiff"} {
		fileName := filepath.Join(tmpDir, name)
		require.NoError(t, Write(buffer, 2, 2, fileName), name)

		info, err := os.Stat(fileName)
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}
