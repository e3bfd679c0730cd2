package imageio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ryancarins/mandlebrot/mandelbrot"
)

// Write unpacks a completed packed-colour buffer into an image and encodes it
// to fileName. The format follows the file extension: PNG, JPEG, BMP or TIFF.
func Write(buffer []uint32, width int, height int, fileName string) error {
	if len(buffer) != width*height {
		return fmt.Errorf("buffer holds %d pixels, want %d (%dx%d)", len(buffer), width*height, width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for row := 0; row < height; row++ {
		for column := 0; column < width; column++ {
			img.SetRGBA(column, row, mandelbrot.UnpackRGB(buffer[row*width+column]))
		}
	}

	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create file %s - %s", fileName, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".png":
		err = png.Encode(file, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, img, nil)
	case ".bmp":
		err = bmp.Encode(file, img)
	case ".tif", ".tiff":
		err = tiff.Encode(file, img, nil)
	default:
		return fmt.Errorf("unsupported image format %s (supported: png, jpeg, bmp, tiff)", filepath.Ext(fileName))
	}
	if err != nil {
		return fmt.Errorf("unable to encode %s - %s", fileName, err)
	}
	return nil
}
