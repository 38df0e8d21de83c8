package models

import (
	"time"
)

// Gamification log entry types.
const (
	LogEntryPoints = "points"
	LogEntryBadge  = "badge"
	LogEntryHours  = "hours"
)

// VolunteerStats holds the derived gamification totals for one volunteer.
// Points and Hours only ever grow; Badges keeps insertion order and never
// contains duplicates.
type VolunteerStats struct {
	Points int      `json:"points"`
	Hours  float64  `json:"hours"`
	Badges []string `json:"badges"`
}

// HasBadge reports whether the badge was already awarded.
func (s *VolunteerStats) HasBadge(name string) bool {
	for _, b := range s.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// GamificationLogEntry is an immutable audit record of one award. The log is
// append-only and is never read back to rebuild totals; VolunteerStats stores
// them redundantly.
type GamificationLogEntry struct {
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Value     any       `json:"value"` // points/hours amount, or badge name
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// LeaderboardEntry is one row of the points leaderboard.
type LeaderboardEntry struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Points   int    `json:"points"`
}
