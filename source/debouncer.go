package source

import (
	"sync"
	"sync/atomic"
	"time"
)

// Default debounce delay for coalescing rapid file writes.
// Editors often write a source file several times in quick succession;
// 150ms coalesces those into one reconcile pass.
const DefaultDebounceDelay = 150 * time.Millisecond

// debouncer coalesces rapid write events per path. An event is only
// processed after a delay period with no new events for that path.
type debouncer struct {
	pending   map[string]*time.Timer
	mu        sync.Mutex
	delay     time.Duration
	onProcess func(path string)
	stopping  atomic.Bool
}

// newDebouncer creates a debouncer with the specified delay
func newDebouncer(delay time.Duration, onProcess func(path string)) *debouncer {
	return &debouncer{
		pending:   make(map[string]*time.Timer),
		delay:     delay,
		onProcess: onProcess,
	}
}

// Queue adds a write event to the debounce queue. New events for the same
// path reset the timer. Returns false if the debouncer is stopping and the
// event was ignored.
func (d *debouncer) Queue(path string) bool {
	if d.stopping.Load() {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// Double-check after acquiring lock (prevents race with Stop)
	if d.stopping.Load() {
		return false
	}

	if timer, ok := d.pending[path]; ok {
		if timer.Reset(d.delay) {
			return true
		}
		// Timer already fired; fall through and arm a fresh one
	}

	d.pending[path] = time.AfterFunc(d.delay, func() {
		d.onTimer(path)
	})
	return true
}

// onTimer fires when the debounce delay expires
func (d *debouncer) onTimer(path string) {
	d.mu.Lock()
	_, ok := d.pending[path]
	if ok {
		delete(d.pending, path)
	}
	d.mu.Unlock()

	if ok && !d.stopping.Load() {
		d.onProcess(path)
	}
}

// Stop cancels all pending events and prevents new ones from being queued
func (d *debouncer) Stop() {
	d.stopping.Store(true)

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, timer := range d.pending {
		timer.Stop()
	}
	d.pending = make(map[string]*time.Timer)
}

// PendingCount returns the number of pending events (for testing)
func (d *debouncer) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
