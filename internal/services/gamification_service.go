package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/repository"
	"github.com/sirupsen/logrus"
)

// HourMilestone pairs a cumulative-hours threshold with the badge it earns.
type HourMilestone struct {
	Hours float64
	Badge string
}

// Hour milestones, ascending. Evaluation order matters: a single large hours
// log can cross several thresholds and must award the badges lowest first.
var hourMilestones = []HourMilestone{
	{Hours: 10, Badge: "10 Hour Hero"},
	{Hours: 50, Badge: "50 Hour Superstar"},
	{Hours: 100, Badge: "100 Hour Legend"},
	{Hours: 250, Badge: "250 Hour Titan"},
}

// GamificationService owns volunteer stats (points, hours, badges) and the
// append-only award log. Points and hours only ever grow; there is no
// subtraction operation anywhere in the system.
type GamificationService struct {
	repo     *repository.GamificationRepository
	userRepo *repository.UserRepository
}

// NewGamificationService creates a new instance of GamificationService.
func NewGamificationService(repo *repository.GamificationRepository, userRepo *repository.UserRepository) *GamificationService {
	return &GamificationService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// GetUserStats returns a copy of the user's current stats. A user who was
// never awarded anything gets the zero state; absence is not an error.
func (s *GamificationService) GetUserStats(ctx context.Context, userID string) (models.VolunteerStats, error) {
	all, err := s.repo.GetAllStats(ctx)
	if err != nil {
		return models.VolunteerStats{}, fmt.Errorf("failed to load stats: %v", err)
	}
	return cloneStats(all[userID]), nil
}

// AddPoints increments the user's points and records a log entry. A
// non-positive amount is a silent no-op returning the current stats. The
// operation is deliberately not idempotent: awarding twice with the same
// reason counts twice, callers must not double-invoke.
func (s *GamificationService) AddPoints(ctx context.Context, userID string, amount int, reason string) (models.VolunteerStats, error) {
	if amount <= 0 {
		return s.GetUserStats(ctx, userID)
	}

	all, err := s.repo.GetAllStats(ctx)
	if err != nil {
		return models.VolunteerStats{}, fmt.Errorf("failed to load stats: %v", err)
	}

	stats := all[userID]
	stats.Points += amount
	all[userID] = stats

	if err := s.repo.SaveAllStats(ctx, all); err != nil {
		return models.VolunteerStats{}, fmt.Errorf("failed to save stats: %v", err)
	}

	entry := models.GamificationLogEntry{
		UserID:    userID,
		Type:      models.LogEntryPoints,
		Value:     amount,
		Reason:    reason,
		Timestamp: time.Now(),
	}
	if err := s.repo.AppendLogEntries(ctx, entry); err != nil {
		return models.VolunteerStats{}, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"amount":  amount,
		"reason":  reason,
	}).Info("Points awarded")

	return cloneStats(stats), nil
}

// AwardBadge adds a badge to the user's set. Awarding a badge the user
// already holds is a no-op with no log entry; this is the dedup mechanism
// the hour-milestone cascade relies on.
func (s *GamificationService) AwardBadge(ctx context.Context, userID, badgeName, reason string) (models.VolunteerStats, error) {
	all, err := s.repo.GetAllStats(ctx)
	if err != nil {
		return models.VolunteerStats{}, fmt.Errorf("failed to load stats: %v", err)
	}

	stats := all[userID]
	if stats.HasBadge(badgeName) {
		return cloneStats(stats), nil
	}

	stats.Badges = append(stats.Badges, badgeName)
	all[userID] = stats

	if err := s.repo.SaveAllStats(ctx, all); err != nil {
		return models.VolunteerStats{}, fmt.Errorf("failed to save stats: %v", err)
	}

	entry := models.GamificationLogEntry{
		UserID:    userID,
		Type:      models.LogEntryBadge,
		Value:     badgeName,
		Reason:    reason,
		Timestamp: time.Now(),
	}
	if err := s.repo.AppendLogEntries(ctx, entry); err != nil {
		return models.VolunteerStats{}, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"badge":   badgeName,
	}).Info("Badge awarded")

	return cloneStats(stats), nil
}

// LogHours increments the user's volunteer hours, records a log entry and
// then walks the hour milestones, awarding any badge newly within reach.
// Returns the stats after all cascaded awards. Non-positive hours are a
// silent no-op.
func (s *GamificationService) LogHours(ctx context.Context, userID string, hours float64, reason string) (models.VolunteerStats, error) {
	if hours <= 0 {
		return s.GetUserStats(ctx, userID)
	}

	all, err := s.repo.GetAllStats(ctx)
	if err != nil {
		return models.VolunteerStats{}, fmt.Errorf("failed to load stats: %v", err)
	}

	stats := all[userID]
	stats.Hours += hours
	all[userID] = stats

	if err := s.repo.SaveAllStats(ctx, all); err != nil {
		return models.VolunteerStats{}, fmt.Errorf("failed to save stats: %v", err)
	}

	entry := models.GamificationLogEntry{
		UserID:    userID,
		Type:      models.LogEntryHours,
		Value:     hours,
		Reason:    reason,
		Timestamp: time.Now(),
	}
	if err := s.repo.AppendLogEntries(ctx, entry); err != nil {
		return models.VolunteerStats{}, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"hours":   hours,
		"total":   stats.Hours,
	}).Info("Hours logged")

	final := cloneStats(stats)
	for _, milestone := range hourMilestones {
		if stats.Hours < milestone.Hours {
			break
		}
		final, err = s.AwardBadge(ctx, userID, milestone.Badge,
			fmt.Sprintf("Reached %v volunteer hours", milestone.Hours))
		if err != nil {
			return models.VolunteerStats{}, err
		}
	}

	return final, nil
}

// GetLeaderboard joins stats against user profiles and returns the top
// volunteers by points. Only accounts with the volunteer role are ranked.
// Ordering between equal point totals follows map iteration and is therefore
// not deterministic.
func (s *GamificationService) GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	all, err := s.repo.GetAllStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %v", err)
	}

	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %v", err)
	}

	volunteers := make(map[string]string, len(users))
	for _, user := range users {
		if user.Role == models.RoleVolunteer {
			volunteers[user.ID] = user.Name
		}
	}

	entries := []models.LeaderboardEntry{}
	for userID, stats := range all {
		name, ok := volunteers[userID]
		if !ok {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			UserID:   userID,
			UserName: name,
			Points:   stats.Points,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// GetUserLog returns the user's award audit trail, oldest first.
func (s *GamificationService) GetUserLog(ctx context.Context, userID string) ([]models.GamificationLogEntry, error) {
	return s.repo.GetLogForUser(ctx, userID)
}

func cloneStats(stats models.VolunteerStats) models.VolunteerStats {
	out := stats
	out.Badges = make([]string, len(stats.Badges))
	copy(out.Badges, stats.Badges)
	return out
}
