package render

import (
	"sync"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/ryancarins/mandlebrot/mandelbrot"
	"github.com/ryancarins/mandlebrot/progress"
)

// Generate renders the settings into a packed-colour buffer of Width*Height
// entries where index row*Width+column addresses pixel (column, row).
//
// It spawns Threads workers, each with its own copy of the settings carrying
// a distinct WorkerID, then acts as the single aggregator: it drains the
// results channel into the buffer until the channel closes, which happens
// once every worker has disconnected. That close is the sole termination
// signal.
func Generate(settings mandelbrot.Settings, tracker *progress.Tracker) ([]uint32, error) {
	if err := settings.Verify(); err != nil {
		return nil, err
	}

	logger := bslogger.NewLogger("Render", bslogger.Normal, nil)
	logger.Info(settings.String())

	buffer := make([]uint32, settings.Width*settings.Height)
	lines := NewLineDispatcher(settings.Height)
	results := make(chan Pixel, settings.Width)

	var wait sync.WaitGroup
	for i := 0; i < settings.Threads; i++ {
		local := settings
		local.WorkerID = i
		wait.Add(1)
		go runWorker(local, lines, results, &wait)
	}

	go func() {
		wait.Wait()
		close(results)
	}()

	// One progress tick per 1/100 of the image; clamped so images under 100
	// pixels still tick.
	step := len(buffer) / 100
	if step == 0 {
		step = 1
	}

	written := 0
	for pixel := range results {
		buffer[pixel.Index] = pixel.Colour
		written++
		if written%step == 0 {
			tracker.Tick()
		}
	}
	tracker.Finish()

	logger.Debugf("Wrote %d of %d pixels", written, len(buffer))
	return buffer, nil
}
