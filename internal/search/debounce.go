package search

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultDelay is the quiet period after the last keystroke before a search is issued.
const DefaultDelay = 300 * time.Millisecond

// Debouncer owns a single pending delayed call. Triggering again cancels the
// pending call and restarts the delay; a superseded call never runs.
type Debouncer struct {
	clock    clockwork.Clock
	delay    time.Duration
	dispatch func(func())

	mu    sync.Mutex
	gen   uint64
	timer clockwork.Timer
}

// NewDebouncer 建立 debouncer；dispatch 為 nil 時直接在計時器 goroutine 執行
func NewDebouncer(clock clockwork.Clock, delay time.Duration, dispatch func(func())) *Debouncer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Debouncer{clock: clock, delay: delay, dispatch: dispatch}
}

func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.delay, func() {
		// The generation is checked again where fn runs: a Cancel may land
		// between the timer firing and the dispatched call.
		d.dispatch(func() {
			if d.settle(gen) {
				fn()
			}
		})
	})
}

// Cancel drops the pending call, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a call is waiting for its delay to elapse.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) settle(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return false
	}
	d.timer = nil
	return true
}
