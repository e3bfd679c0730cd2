package render

import "sync"

// LineDispatcher hands out scanline rows to whichever worker asks next.
// Rows near the set boundary iterate far longer than rows inside or outside
// it, so a static split across workers balances badly; claiming one row at a
// time levels the load at the cost of one lock acquisition per row.
type LineDispatcher struct {
	mutex  sync.Mutex
	next   int
	height int
}

func NewLineDispatcher(height int) *LineDispatcher {
	return &LineDispatcher{height: height}
}

// Claim returns the next unclaimed row index. Once every row in 0..height-1
// has been handed out it reports ok == false; each row is returned to exactly
// one caller.
func (d *LineDispatcher) Claim() (int, bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.next >= d.height {
		return 0, false
	}
	row := d.next
	d.next++
	return row, true
}
