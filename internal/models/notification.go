package models

import (
	"time"
)

// Notification is an in-app message for a single user. Creation is
// append-only; Read is the only mutable field.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	Read      bool      `json:"isRead"`
	CreatedAt time.Time `json:"timestamp"`
	ExpiresAt time.Time `json:"expiresAt"` // for periodic cleanup
}
