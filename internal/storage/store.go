package storage

import (
	"context"
)

// Dataset keys used by the application. Each key names one logically
// independent collection that is always loaded and saved as a whole.
const (
	DatasetUsers           = "users"
	DatasetOpportunities   = "opportunities"
	DatasetApplications    = "applications"
	DatasetConversations   = "conversations"
	DatasetGamificationLog = "gamification-log"
	DatasetUserStats       = "user-stats"
	DatasetNotifications   = "notifications"
)

// Store is the persistence collaborator every repository talks to. A dataset
// is read and replaced wholesale; there are no partial updates and no
// transactions across keys. Two concurrent writers to the same key are
// last-write-wins at dataset granularity, which is an accepted limitation of
// this model.
type Store interface {
	// Load unmarshals the dataset stored under key into out. If the dataset
	// has never been saved, out is left untouched so the caller's default
	// value stands.
	Load(ctx context.Context, key string, out any) error

	// Save replaces the entire dataset under key. The replacement is atomic
	// from the point of view of subsequent loads.
	Save(ctx context.Context, key string, value any) error
}
