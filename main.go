package main

import (
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ryancarins/mandlebrot/imageio"
	"github.com/ryancarins/mandlebrot/mandelbrot"
	"github.com/ryancarins/mandlebrot/misc"
	"github.com/ryancarins/mandlebrot/progress"
	"github.com/ryancarins/mandlebrot/render"
)

const defaultFileName = "output.bmp"

var (
	configFile  string
	paletteFile string
	fileName    string
	flags       = mandelbrot.NewSettings()
)

var rootCmd = &cobra.Command{
	Use:   "mandlebrot",
	Short: "Parallel Mandelbrot set renderer",
	Long: `Renders the Mandelbrot set into an image file, spreading the
escape-time computation for each scanline across worker threads.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.IntVarP(&flags.Width, "width", "w", mandelbrot.DefaultWidth, "Width of resulting image")
	f.IntVar(&flags.Height, "height", mandelbrot.DefaultHeight, "Height of resulting image")
	f.Float64Var(&flags.CentreX, "centrex", mandelbrot.DefaultCentreX, "Centre x value of the viewport")
	f.Float64Var(&flags.CentreY, "centrey", mandelbrot.DefaultCentreY, "Centre y value of the viewport")
	f.Float64Var(&flags.ScaleY, "scale", mandelbrot.DefaultScaleY, "Half-height of the viewport on the complex plane")
	f.IntVar(&flags.MaxIterations, "iterations", mandelbrot.DefaultMaxIterations, "Maximum number of iterations per point")
	f.IntVar(&flags.Samples, "samples", mandelbrot.DefaultSamples, "Supersampling grid side length")
	f.IntVar(&flags.Colour, "colour", mandelbrot.DefaultColour, "Palette code for the image (0-7)")
	f.IntVar(&flags.MaxColours, "maxcolours", mandelbrot.DefaultMaxColours, "Banding period of the banded palettes")
	f.IntVarP(&flags.Threads, "threads", "j", mandelbrot.DefaultThreads, "Number of threads to use for processing")
	f.BoolVar(&flags.Colourise, "colourise", false, "Use a different colour for each thread")
	f.BoolVar(&flags.Progress, "progress", false, "Display progress bar")
	f.StringVar(&fileName, "name", defaultFileName, "Output file name (png, jpeg, bmp or tiff)")
	f.StringVar(&paletteFile, "palette-file", "", "Json file with colour ramps overriding --colour")
	f.StringVar(&configFile, "config", "", "Yaml file with render settings; explicit flags override it")
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := buildSettings(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	tracker := progress.NewTracker(settings.Progress)
	buffer, err := render.Generate(settings, tracker)
	if err != nil {
		return err
	}

	if err := imageio.Write(buffer, settings.Width, settings.Height, fileName); err != nil {
		return err
	}

	color.Green("Wrote %s in %s", fileName, time.Since(start).Round(time.Millisecond))
	return nil
}

// buildSettings layers the configuration sources: defaults, then the YAML
// config file, then any flag the user set explicitly.
func buildSettings(cmd *cobra.Command) (mandelbrot.Settings, error) {
	settings := flags
	if configFile != "" {
		loaded, err := mandelbrot.LoadSettings(configFile)
		if err != nil {
			return settings, err
		}
		settings = loaded
		overrideFromFlags(cmd, &settings)
	}

	if paletteFile != "" {
		palette, err := mandelbrot.LoadPalette(paletteFile)
		if err != nil {
			return settings, err
		}
		settings.Palette = palette
	}
	return settings, nil
}

func overrideFromFlags(cmd *cobra.Command, settings *mandelbrot.Settings) {
	set := cmd.Flags()
	if set.Changed("width") {
		settings.Width = flags.Width
	}
	if set.Changed("height") {
		settings.Height = flags.Height
	}
	if set.Changed("centrex") {
		settings.CentreX = flags.CentreX
	}
	if set.Changed("centrey") {
		settings.CentreY = flags.CentreY
	}
	if set.Changed("scale") {
		settings.ScaleY = flags.ScaleY
	}
	if set.Changed("iterations") {
		settings.MaxIterations = flags.MaxIterations
	}
	if set.Changed("samples") {
		settings.Samples = flags.Samples
	}
	if set.Changed("colour") {
		settings.Colour = flags.Colour
	}
	if set.Changed("maxcolours") {
		settings.MaxColours = flags.MaxColours
	}
	if set.Changed("threads") {
		settings.Threads = flags.Threads
	}
	if set.Changed("colourise") {
		settings.Colourise = flags.Colourise
	}
	if set.Changed("progress") {
		settings.Progress = flags.Progress
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger := bslogger.NewLogger("Mandlebrot", bslogger.Normal, nil)
		misc.CheckError(err, logger, misc.Fatal)
	}
}
