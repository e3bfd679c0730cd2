package render

import (
	"fmt"
	"sync"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/ryancarins/mandlebrot/mandelbrot"
)

// Pixel is one finished pixel travelling from a worker to the aggregator.
// Index is the absolute offset row*width+column into the output buffer, so
// the buffer's final state does not depend on arrival order.
type Pixel struct {
	Index  int
	Colour uint32
}

// runWorker claims rows until the dispatcher runs dry, rendering each row
// left to right and emitting every pixel on the results channel. Workers
// never touch the output buffer.
func runWorker(settings mandelbrot.Settings, lines *LineDispatcher, results chan<- Pixel, wait *sync.WaitGroup) {
	defer wait.Done()

	logger := bslogger.NewLogger(fmt.Sprintf("Worker %d", settings.WorkerID), bslogger.Normal, nil)
	m := mandelbrot.NewMandelbrot(settings)

	rowsRendered := 0
	for {
		row, ok := lines.Claim()
		if !ok {
			break
		}
		for column := 0; column < settings.Width; column++ {
			results <- Pixel{
				Index:  row*settings.Width + column,
				Colour: m.PixelColour(column, row),
			}
		}
		rowsRendered++
	}
	logger.Debugf("Rendered %d rows", rowsRendered)
}
