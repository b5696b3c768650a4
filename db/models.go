package db

import (
	"time"
)

// SessionRecord represents a toggle-list session row
type SessionRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Source    string `json:"source,omitempty"`
	State     string `json:"state"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// NowMs returns the current time in epoch milliseconds
func NowMs() int64 {
	return time.Now().UnixMilli()
}
