package mandelbrot

import "image/color"

// escapeBoundary is the squared escape radius for the iteration z <- z^2 + c.
const escapeBoundary = 4.0

// PackRGB packs a color into the 32-bit wire layout consumed by the image
// encoder: red in bits 0-7, green in 8-15, blue in 16-23, top byte unused.
func PackRGB(c color.RGBA) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

func UnpackRGB(v uint32) color.RGBA {
	return color.RGBA{
		R: uint8(v & 0x000000ff),
		G: uint8((v & 0x0000ff00) >> 8),
		B: uint8((v & 0x00ff0000) >> 16),
		A: 255,
	}
}

type Mandelbrot struct {
	settings  Settings
	subPixels []float64
	tint      color.RGBA
	hasTint   bool
}

func NewMandelbrot(settings Settings) Mandelbrot {
	mandelbrot := Mandelbrot{
		settings:  settings,
		subPixels: make([]float64, settings.Samples),
	}

	// Grid supersampling: offsets form a regular sub-grid centered on the
	// pixel. samples == 1 degenerates to a single centered sample.
	for i := 0; i < settings.Samples; i++ {
		mandelbrot.subPixels[i] = ((0.5 + float64(i)) / float64(settings.Samples)) - 0.5
	}

	if settings.Colourise && settings.WorkerID >= 0 {
		mandelbrot.tint = TintColour(settings.WorkerID, settings.Threads)
		mandelbrot.hasTint = true
	}

	return mandelbrot
}

// PixelColour computes the packed colour of one pixel: escape time and
// palette lookup per sub-sample, then a channel-wise average across the
// samples^2 grid.
func (m *Mandelbrot) PixelColour(column int, row int) uint32 {
	var r, g, b int
	for _, sx := range m.subPixels {
		for _, sy := range m.subPixels {
			x, y := m.PointAt(column, row, sx, sy)
			iterations, escaped := m.EscapeTime(x, y)
			sample := m.colourFor(iterations, escaped)
			r += int(sample.R)
			g += int(sample.G)
			b += int(sample.B)
		}
	}
	divisor := len(m.subPixels) * len(m.subPixels)
	final := color.RGBA{R: uint8(r / divisor), G: uint8(g / divisor), B: uint8(b / divisor), A: 255}

	if m.hasTint {
		final = blendColour(final, m.tint)
	}
	return PackRGB(final)
}

// PointAt converts the (column, row) pixel plus a sub-pixel offset to a point
// on the complex plane. The viewport spans ScaleX/ScaleY half-extents around
// the centre.
func (m *Mandelbrot) PointAt(column int, row int, xOffset float64, yOffset float64) (float64, float64) {
	u := ((float64(column)+xOffset)/float64(m.settings.Width) - 0.5) * 2 * m.settings.ScaleX()
	v := ((float64(row)+yOffset)/float64(m.settings.Height) - 0.5) * 2 * m.settings.ScaleY
	return m.settings.CentreX + u, m.settings.CentreY + v
}

// EscapeTime runs the escape-time iteration for the complex point (x, y).
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Optimized_escape_time_algorithms
func (m *Mandelbrot) EscapeTime(x float64, y float64) (int, bool) {
	x1, y1, x2, y2 := 0.0, 0.0, 0.0, 0.0
	iteration := 0
	for (x2+y2) <= escapeBoundary && iteration < m.settings.MaxIterations {
		y1 = 2*x1*y1 + y
		x1 = x2 - y2 + x
		x2 = x1 * x1
		y2 = y1 * y1
		iteration++
	}
	return iteration, (x2 + y2) > escapeBoundary
}

func (m *Mandelbrot) colourFor(iterations int, escaped bool) color.RGBA {
	if !escaped {
		return inSetColour
	}
	if len(m.settings.Palette) > 0 {
		return m.settings.Palette[iterations%len(m.settings.Palette)]
	}
	return paletteColour(m.settings.Colour, iterations, m.settings.MaxIterations, m.settings.MaxColours)
}
