package notifications

import (
	"testing"
	"time"
)

func TestSubscribeAndNotify(t *testing.T) {
	s := NewService()

	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	s.NotifySessionChanged("abc", "toggle")

	select {
	case event := <-events:
		if event.Type != EventSessionChanged {
			t.Errorf("event type = %s, want %s", event.Type, EventSessionChanged)
		}
		data, ok := event.Data.(map[string]any)
		if !ok || data["sessionId"] != "abc" {
			t.Errorf("event data = %v, want sessionId abc", event.Data)
		}
		if event.Timestamp == 0 {
			t.Error("timestamp not set")
		}
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	s := NewService()

	events, unsubscribe := s.Subscribe()
	unsubscribe()

	if _, ok := <-events; ok {
		t.Error("channel should be closed after unsubscribe")
	}
	if s.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount() = %d, want 0", s.SubscriberCount())
	}

	// Double unsubscribe must not panic
	unsubscribe()
}

func TestNotifySkipsFullSubscribers(t *testing.T) {
	s := NewService()

	_, unsubscribe := s.Subscribe()
	defer unsubscribe()

	// Channel buffer is 10; overflow must not block
	done := make(chan struct{})
	go func() {
		for i := 0; i < 20; i++ {
			s.NotifySourceChanged("items.json", 1)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full subscriber channel")
	}
}

func TestShutdownClosesAllSubscribers(t *testing.T) {
	s := NewService()

	events, _ := s.Subscribe()
	s.Shutdown()

	if _, ok := <-events; ok {
		t.Error("channel should be closed after shutdown")
	}
}
