package mandelbrot

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/ryancarins/mandlebrot/misc"
)

// maxPaletteCode is the highest built-in palette code; Verify folds anything
// outside 0..maxPaletteCode back to the default.
const maxPaletteCode = 7

// inSetColour is what every palette gives points that never escape.
var inSetColour = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// paletteColour maps an escape iteration count to a colour.
//
// The built-in palettes are a stable contract:
//
//	0 greyscale   banded grey ramp
//	1 red         banded black to red ramp
//	2 green       banded black to green ramp
//	3 blue        banded black to blue ramp
//	4 fire        black -> red -> yellow -> white
//	5 ice         black -> blue -> cyan -> white
//	6 rainbow     hue cycle at full saturation
//	7 smooth      polynomial gradient scaled by the iteration budget
//
// Banded palettes (0-6) cycle with period maxColours; the smooth palette
// keys on iterations/maxIterations instead.
func paletteColour(code int, iterations int, maxIterations int, maxColours int) color.RGBA {
	t := float64(iterations%maxColours) / float64(maxColours)

	switch code {
	case 0:
		v := uint8(255 * t)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	case 1:
		return color.RGBA{R: uint8(255 * t), A: 255}
	case 2:
		return color.RGBA{G: uint8(255 * t), A: 255}
	case 3:
		return color.RGBA{B: uint8(255 * t), A: 255}
	case 4:
		return rampColour(t,
			color.RGBA{A: 255},
			color.RGBA{R: 255, A: 255},
			color.RGBA{R: 255, G: 255, A: 255},
			color.RGBA{R: 255, G: 255, B: 255, A: 255})
	case 5:
		return rampColour(t,
			color.RGBA{A: 255},
			color.RGBA{B: 255, A: 255},
			color.RGBA{G: 255, B: 255, A: 255},
			color.RGBA{R: 255, G: 255, B: 255, A: 255})
	case 6:
		return hsvColour(360*t, 1, 1)
	default:
		s := float64(iterations) / float64(maxIterations)
		return color.RGBA{
			R: uint8(9 * (1 - s) * s * s * s * 255),
			G: uint8(15 * (1 - s) * (1 - s) * s * s * 255),
			B: uint8(8.5 * (1 - s) * (1 - s) * (1 - s) * s * 255),
			A: 255,
		}
	}
}

// rampColour interpolates t in [0,1) across a piecewise gradient of stops.
func rampColour(t float64, stops ...color.RGBA) color.RGBA {
	segments := len(stops) - 1
	position := t * float64(segments)
	segment := int(position)
	if segment >= segments {
		segment = segments - 1
	}
	fraction := position - float64(segment)
	return misc.LinearInterpolationRGB(stops[segment], stops[segment+1], fraction)
}

// hsvColour converts hue (degrees), saturation and value to RGB.
func hsvColour(h float64, s float64, v float64) color.RGBA {
	h = math.Mod(math.Mod(h, 360)+360, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := v - c
	return color.RGBA{
		R: uint8(255 * (r + m)),
		G: uint8(255 * (g + m)),
		B: uint8(255 * (b + m)),
		A: 255,
	}
}

// TintColour is the deterministic per-worker tint used by colourise: worker i
// of n gets the hue i*360/n at full saturation.
func TintColour(workerID int, threads int) color.RGBA {
	return hsvColour(float64(workerID)*360/float64(threads), 1, 1)
}

func blendColour(base color.RGBA, tint color.RGBA) color.RGBA {
	return misc.LinearInterpolationRGB(base, tint, 0.5)
}

// PaletteRamp is one gradient segment of a custom palette file.
type PaletteRamp struct {
	StartColor   color.RGBA
	EndColor     color.RGBA
	NumberColors int
}

func (pr *PaletteRamp) GeneratePalette() []color.RGBA {
	palette := make([]color.RGBA, 0, pr.NumberColors)
	for j := 0; j < pr.NumberColors; j++ {
		fraction := float64(j) / float64(pr.NumberColors)
		colorStep := color.RGBA{
			R: misc.LerpUint8(pr.StartColor.R, pr.EndColor.R, fraction),
			G: misc.LerpUint8(pr.StartColor.G, pr.EndColor.G, fraction),
			B: misc.LerpUint8(pr.StartColor.B, pr.EndColor.B, fraction),
			A: 255}
		palette = append(palette, colorStep)
	}
	return palette
}

// LoadPalette reads a JSON list of PaletteRamp entries and expands them into
// a banded palette that overrides the built-in palette codes.
func LoadPalette(fileName string) ([]color.RGBA, error) {
	bytes, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("unable to read palette %s - %s", fileName, err)
	}

	var ramps []PaletteRamp
	if err := json.Unmarshal(bytes, &ramps); err != nil {
		return nil, fmt.Errorf("unable to parse palette %s - %s", fileName, err)
	}

	palette := make([]color.RGBA, 0)
	for i := range ramps {
		palette = append(palette, ramps[i].GeneratePalette()...)
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("palette %s has no colors", fileName)
	}
	return palette, nil
}
