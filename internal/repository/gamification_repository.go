package repository

import (
	"context"
	"fmt"

	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/storage"
)

// GamificationRepository handles persistence of per-user stats and the
// append-only award log. Stats are keyed by user ID; the log is a flat list
// that is written to but never read back for aggregate computation.
type GamificationRepository struct {
	store storage.Store
}

// NewGamificationRepository creates a new instance of GamificationRepository.
func NewGamificationRepository(store storage.Store) *GamificationRepository {
	return &GamificationRepository{store: store}
}

// GetAllStats loads the full user-stats dataset.
func (r *GamificationRepository) GetAllStats(ctx context.Context) (map[string]models.VolunteerStats, error) {
	stats := map[string]models.VolunteerStats{}
	if err := r.store.Load(ctx, storage.DatasetUserStats, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// SaveAllStats replaces the full user-stats dataset.
func (r *GamificationRepository) SaveAllStats(ctx context.Context, stats map[string]models.VolunteerStats) error {
	return r.store.Save(ctx, storage.DatasetUserStats, stats)
}

// AppendLogEntries appends award records to the gamification log.
func (r *GamificationRepository) AppendLogEntries(ctx context.Context, entries ...models.GamificationLogEntry) error {
	log := []models.GamificationLogEntry{}
	if err := r.store.Load(ctx, storage.DatasetGamificationLog, &log); err != nil {
		return err
	}
	log = append(log, entries...)
	if err := r.store.Save(ctx, storage.DatasetGamificationLog, log); err != nil {
		return fmt.Errorf("failed to append gamification log: %v", err)
	}
	return nil
}

// GetLogForUser returns the audit trail for one user, oldest first.
func (r *GamificationRepository) GetLogForUser(ctx context.Context, userID string) ([]models.GamificationLogEntry, error) {
	log := []models.GamificationLogEntry{}
	if err := r.store.Load(ctx, storage.DatasetGamificationLog, &log); err != nil {
		return nil, err
	}
	matched := []models.GamificationLogEntry{}
	for _, entry := range log {
		if entry.UserID == userID {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}
