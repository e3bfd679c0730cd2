package mandelbrot

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth         = 1024
	DefaultHeight        = 1024
	DefaultCentreX       = -0.75
	DefaultCentreY       = 0.0
	DefaultScaleY        = 2.5
	DefaultMaxIterations = 256
	DefaultSamples       = 1
	DefaultColour        = 7
	DefaultMaxColours    = 256
	DefaultThreads       = 1
)

// Settings describes one render. It is treated as immutable once verified;
// the render loop hands each worker its own copy with a distinct WorkerID.
type Settings struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	CentreX       float64 `yaml:"centrex"`
	CentreY       float64 `yaml:"centrey"`
	ScaleY        float64 `yaml:"scale"`
	MaxIterations int     `yaml:"iterations"`
	Samples       int     `yaml:"samples"`
	Colour        int     `yaml:"colour"`
	MaxColours    int     `yaml:"maxcolours"`
	Colourise     bool    `yaml:"colourise"`
	Threads       int     `yaml:"threads"`
	Progress      bool    `yaml:"progress"`

	// Palette overrides Colour when non-empty. Loaded from a palette file,
	// never from flags.
	Palette []color.RGBA `yaml:"-"`

	// WorkerID is -1 in the template Settings and 0..Threads-1 in the copy
	// handed to each worker.
	WorkerID int `yaml:"-"`
}

func NewSettings() Settings {
	return Settings{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		CentreX:       DefaultCentreX,
		CentreY:       DefaultCentreY,
		ScaleY:        DefaultScaleY,
		MaxIterations: DefaultMaxIterations,
		Samples:       DefaultSamples,
		Colour:        DefaultColour,
		MaxColours:    DefaultMaxColours,
		Threads:       DefaultThreads,
		WorkerID:      -1,
	}
}

// LoadSettings reads a YAML render config. Fields absent from the file keep
// their defaults.
func LoadSettings(fileName string) (Settings, error) {
	settings := NewSettings()

	bytes, err := os.ReadFile(fileName)
	if err != nil {
		return settings, fmt.Errorf("unable to read config %s - %s", fileName, err)
	}
	if err := yaml.Unmarshal(bytes, &settings); err != nil {
		return settings, fmt.Errorf("unable to parse config %s - %s", fileName, err)
	}
	return settings, nil
}

func (s *Settings) Verify() error {
	if s.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", s.Width)
	}
	if s.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", s.Height)
	}
	if s.ScaleY <= 0 {
		return fmt.Errorf("scale must be positive, got %f", s.ScaleY)
	}
	if s.MaxIterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", s.MaxIterations)
	}
	if s.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", s.Samples)
	}
	if s.Threads <= 0 {
		return fmt.Errorf("threads must be positive, got %d", s.Threads)
	}
	if s.Colour < 0 || s.Colour > maxPaletteCode {
		s.Colour = DefaultColour
	}
	if s.MaxColours <= 0 {
		s.MaxColours = DefaultMaxColours
	}
	return nil
}

// ScaleX is the half-width of the viewport in complex-plane units, derived
// from ScaleY to preserve the image's aspect ratio.
func (s *Settings) ScaleX() float64 {
	return s.ScaleY * float64(s.Width) / float64(s.Height)
}

func (s *Settings) String() string {
	output := "\nRender settings\n"
	output += fmt.Sprintf("Size: %dx%d\n", s.Width, s.Height)
	output += fmt.Sprintf("Centre: (%g, %g)\n", s.CentreX, s.CentreY)
	output += fmt.Sprintf("Scale: %g\n", s.ScaleY)
	output += fmt.Sprintf("Max iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Samples: %d\n", s.Samples)
	if len(s.Palette) > 0 {
		output += fmt.Sprintf("Palette: custom (%d colors)\n", len(s.Palette))
	} else {
		output += fmt.Sprintf("Palette: %d\n", s.Colour)
	}
	output += fmt.Sprintf("Colourise: %t\n", s.Colourise)
	output += fmt.Sprintf("Threads: %d\n", s.Threads)
	return output
}
