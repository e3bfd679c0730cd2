package progress

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// Tracker drives a 100-tick terminal progress bar. A disabled Tracker
// swallows every signal so callers never branch on the progress flag.
type Tracker struct {
	bar   *progressbar.ProgressBar
	ticks int
}

func NewTracker(enabled bool) *Tracker {
	if !enabled {
		return &Tracker{}
	}
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionSetPredictTime(false),
	)
	return &Tracker{bar: bar}
}

// Tick advances the bar by one percent, ignoring ticks past the end.
func (t *Tracker) Tick() {
	if t.ticks >= 100 {
		return
	}
	t.ticks++
	if t.bar != nil {
		_ = t.bar.Add(1)
	}
}

// Finish completes the bar regardless of how many ticks arrived.
func (t *Tracker) Finish() {
	if t.bar != nil {
		_ = t.bar.Finish()
	}
}
