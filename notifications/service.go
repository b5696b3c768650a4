package notifications

import (
	"sync"
	"time"
)

// EventType represents the type of notification event
type EventType string

const (
	EventConnected      EventType = "connected"
	EventSessionChanged EventType = "session-changed"
	EventSourceChanged  EventType = "source-changed"
)

// Event represents a notification event
type Event struct {
	Type      EventType `json:"type"`
	Timestamp int64     `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}

// Service manages SSE subscriptions and event broadcasting
type Service struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
	done        chan struct{}
}

var (
	service     *Service
	serviceOnce sync.Once
)

// GetService returns the singleton notification service
func GetService() *Service {
	serviceOnce.Do(func() {
		service = NewService()
	})
	return service
}

// NewService creates a new notification service
func NewService() *Service {
	return &Service{
		subscribers: make(map[chan Event]struct{}),
		done:        make(chan struct{}),
	}
}

// Subscribe creates a new subscription channel
// Returns the event channel and an unsubscribe function
func (s *Service) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 10)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	unsubscribe := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		// Only close if the channel is still in subscribers map
		if _, exists := s.subscribers[ch]; exists {
			delete(s.subscribers, ch)
			close(ch)
		}
	}

	return ch, unsubscribe
}

// Notify broadcasts an event to all subscribers
func (s *Service) Notify(event Event) {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for ch := range s.subscribers {
		select {
		case ch <- event:
		default:
			// Channel full, skip this subscriber
		}
	}
}

// NotifySessionChanged sends a session-changed event.
// Fired after any mutation of a session's toggle state so connected front
// ends can repaint.
func (s *Service) NotifySessionChanged(sessionID string, operation string) {
	s.Notify(Event{
		Type:      EventSessionChanged,
		Timestamp: time.Now().UnixMilli(),
		Data: map[string]any{
			"sessionId": sessionID,
			"operation": operation,
		},
	})
}

// NotifySourceChanged sends a source-changed event.
// Fired when a watched item-source file changes and its sessions have been
// reconciled.
func (s *Service) NotifySourceChanged(source string, sessions int) {
	s.Notify(Event{
		Type:      EventSourceChanged,
		Timestamp: time.Now().UnixMilli(),
		Data: map[string]any{
			"source":   source,
			"sessions": sessions,
		},
	})
}

// Shutdown closes the notification service
func (s *Service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	close(s.done)

	// Close all subscriber channels
	for ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = make(map[chan Event]struct{})
}

// SubscriberCount returns the number of active subscribers
func (s *Service) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}
