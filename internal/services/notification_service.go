package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/repository"
	"github.com/sirupsen/logrus"
)

// Notifications are kept for 30 days, then purged by the cleanup job.
const notificationTTL = 30 * 24 * time.Hour

// NotificationService is the fire-and-forget side channel used by the
// application workflow and the messaging store.
type NotificationService struct {
	repo *repository.NotificationRepository
}

// NewNotificationService creates a new instance of NotificationService.
func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Create appends a new unread notification for a user.
func (s *NotificationService) Create(ctx context.Context, userID, message, link string) (*models.Notification, error) {
	notifications, err := s.repo.GetAllNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %v", err)
	}

	now := time.Now()
	notification := models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		Link:      link,
		Read:      false,
		CreatedAt: now,
		ExpiresAt: now.Add(notificationTTL),
	}
	notifications = append(notifications, notification)

	if err := s.repo.SaveAllNotifications(ctx, notifications); err != nil {
		return nil, fmt.Errorf("failed to save notification: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":         userID,
		"notification_id": notification.ID,
	}).Info("Notification created")

	return &notification, nil
}

// ListForUser returns a user's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications, err := s.repo.GetAllNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %v", err)
	}

	matched := []models.Notification{}
	for _, notification := range notifications {
		if notification.UserID == userID {
			matched = append(matched, notification)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

// MarkRead flips the read flag of one notification if it belongs to the
// user. A missing or foreign notification returns nil rather than an error.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID string) (*models.Notification, error) {
	notifications, err := s.repo.GetAllNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %v", err)
	}

	for i := range notifications {
		if notifications[i].ID == notificationID && notifications[i].UserID == userID {
			notifications[i].Read = true
			if err := s.repo.SaveAllNotifications(ctx, notifications); err != nil {
				return nil, fmt.Errorf("failed to save notifications: %v", err)
			}
			return &notifications[i], nil
		}
	}
	return nil, nil
}

// MarkAllRead flips every unread notification of the user and returns how
// many were flipped.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	notifications, err := s.repo.GetAllNotifications(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load notifications: %v", err)
	}

	flipped := 0
	for i := range notifications {
		if notifications[i].UserID == userID && !notifications[i].Read {
			notifications[i].Read = true
			flipped++
		}
	}

	if flipped > 0 {
		if err := s.repo.SaveAllNotifications(ctx, notifications); err != nil {
			return 0, fmt.Errorf("failed to save notifications: %v", err)
		}
	}
	return flipped, nil
}

// DeleteExpired removes notifications past their expiry. Called periodically
// by the scheduler.
func (s *NotificationService) DeleteExpired(ctx context.Context) error {
	notifications, err := s.repo.GetAllNotifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notifications: %v", err)
	}

	now := time.Now()
	kept := notifications[:0]
	for _, notification := range notifications {
		if notification.ExpiresAt.After(now) {
			kept = append(kept, notification)
		}
	}

	removed := len(notifications) - len(kept)
	if removed == 0 {
		return nil
	}

	if err := s.repo.SaveAllNotifications(ctx, kept); err != nil {
		return fmt.Errorf("failed to save notifications: %v", err)
	}
	logrus.Infof("Deleted %d expired notifications", removed)
	return nil
}
