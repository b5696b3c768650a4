package models

import (
	"github.com/xiaoyuanzhu-com/list-filter/togglelist"
)

// Session is the API-facing view of a toggle-list session
type Session struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Source    string             `json:"source,omitempty"`
	Entries   []togglelist.Entry `json:"entries"`
	Active    []string           `json:"active"`
	Count     int                `json:"count"`
	CreatedAt int64              `json:"createdAt"`
	UpdatedAt int64              `json:"updatedAt"`
}

// SessionSummary is the list view of a session, without entry detail
type SessionSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Source    string `json:"source,omitempty"`
	Total     int    `json:"total"`
	Count     int    `json:"count"`
	UpdatedAt int64  `json:"updatedAt"`
}
