package mandelbrot

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackRGBLayout(t *testing.T) {
	packed := PackRGB(color.RGBA{R: 0x01, G: 0x02, B: 0x03, A: 255})
	assert.Equal(t, uint32(0x00030201), packed)

	unpacked := UnpackRGB(packed)
	assert.Equal(t, color.RGBA{R: 0x01, G: 0x02, B: 0x03, A: 255}, unpacked)
}

func TestEscapeTimeOriginNeverEscapes(t *testing.T) {
	settings := NewSettings()
	settings.MaxIterations = 500
	m := NewMandelbrot(settings)

	iterations, escaped := m.EscapeTime(0, 0)
	assert.False(t, escaped)
	assert.Equal(t, 500, iterations)
}

func TestEscapeTimeFarPointEscapesImmediately(t *testing.T) {
	settings := NewSettings()
	m := NewMandelbrot(settings)

	iterations, escaped := m.EscapeTime(10, 10)
	assert.True(t, escaped)
	assert.Equal(t, 1, iterations)
}

func TestPointAtMapsViewportCorners(t *testing.T) {
	settings := NewSettings()
	settings.Width = 2
	settings.Height = 2
	settings.CentreX = 0
	settings.CentreY = 0
	settings.ScaleY = 2
	m := NewMandelbrot(settings)

	x, y := m.PointAt(0, 0, 0, 0)
	assert.InDelta(t, -2.0, x, 1e-12)
	assert.InDelta(t, -2.0, y, 1e-12)

	x, y = m.PointAt(1, 1, 0, 0)
	assert.InDelta(t, 0.0, x, 1e-12)
	assert.InDelta(t, 0.0, y, 1e-12)
}

func TestScaleXPreservesAspectRatio(t *testing.T) {
	settings := NewSettings()
	settings.Width = 400
	settings.Height = 200
	settings.ScaleY = 1.25

	assert.InDelta(t, 2.5, settings.ScaleX(), 1e-12)
}

// At the set boundary the sub-samples of a pixel disagree about escaping, so
// supersampling must change the pixel's colour relative to a single sample.
func TestPixelColourSupersamplingChangesBoundaryPixels(t *testing.T) {
	settings := NewSettings()
	settings.Width = 16
	settings.Height = 16
	settings.CentreX = 0
	settings.CentreY = 0
	settings.ScaleY = 2
	settings.MaxIterations = 64

	single := NewMandelbrot(settings)
	settings.Samples = 3
	sampled := NewMandelbrot(settings)

	changed := false
	for row := 0; row < settings.Height; row++ {
		for column := 0; column < settings.Width; column++ {
			if single.PixelColour(column, row) != sampled.PixelColour(column, row) {
				changed = true
			}
		}
	}
	assert.True(t, changed, "supersampling had no effect anywhere in the image")
}

func TestPixelColourDeterministic(t *testing.T) {
	settings := NewSettings()
	settings.Width = 8
	settings.Height = 8
	m := NewMandelbrot(settings)

	first := m.PixelColour(3, 4)
	again := NewMandelbrot(settings)
	assert.Equal(t, first, again.PixelColour(3, 4))
}

func TestPixelColourCustomPalette(t *testing.T) {
	settings := NewSettings()
	settings.Width = 2
	settings.Height = 2
	settings.MaxIterations = 1
	settings.CentreX = 10
	settings.CentreY = 10
	settings.Palette = []color.RGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 40, G: 50, B: 60, A: 255},
	}
	m := NewMandelbrot(settings)

	// Every point escapes at iteration 1, which indexes palette slot 1.
	require.Equal(t, PackRGB(color.RGBA{R: 40, G: 50, B: 60, A: 255}), m.PixelColour(0, 0))
}
