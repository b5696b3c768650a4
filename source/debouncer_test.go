package source

import (
	"sync"
	"testing"
	"time"
)

func TestDebouncer_CoalescesRapidWrites(t *testing.T) {
	var processed []string
	var mu sync.Mutex

	d := newDebouncer(50*time.Millisecond, func(path string) {
		mu.Lock()
		processed = append(processed, path)
		mu.Unlock()
	})
	defer d.Stop()

	// Queue multiple rapid writes to the same file
	for i := 0; i < 5; i++ {
		d.Queue("items.json")
		time.Sleep(10 * time.Millisecond)
	}

	// Wait for debounce to fire
	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()

	if len(processed) != 1 {
		t.Errorf("expected 1 processed event, got %d", len(processed))
	}
	if len(processed) > 0 && processed[0] != "items.json" {
		t.Errorf("expected path 'items.json', got '%s'", processed[0])
	}
}

func TestDebouncer_SeparatePathsProcessedSeparately(t *testing.T) {
	var processed []string
	var mu sync.Mutex

	d := newDebouncer(20*time.Millisecond, func(path string) {
		mu.Lock()
		processed = append(processed, path)
		mu.Unlock()
	})
	defer d.Stop()

	d.Queue("a.json")
	d.Queue("b.json")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()

	if len(processed) != 2 {
		t.Errorf("expected 2 processed events, got %d", len(processed))
	}
}

func TestDebouncer_StopPreventsNewEvents(t *testing.T) {
	var processed int
	var mu sync.Mutex

	d := newDebouncer(10*time.Millisecond, func(path string) {
		mu.Lock()
		processed++
		mu.Unlock()
	})

	d.Queue("items.json")
	d.Stop()

	if d.Queue("items.json") {
		t.Error("Queue after Stop should return false")
	}

	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()

	if processed != 0 {
		t.Errorf("expected no processed events after Stop, got %d", processed)
	}
}

func TestDebouncer_PendingCount(t *testing.T) {
	d := newDebouncer(100*time.Millisecond, func(path string) {})
	defer d.Stop()

	d.Queue("a.json")
	d.Queue("b.json")

	if got := d.PendingCount(); got != 2 {
		t.Errorf("PendingCount() = %d, want 2", got)
	}
}
