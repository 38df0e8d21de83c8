package repository

import (
	"context"

	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/storage"
)

// NotificationRepository handles persistence of user notifications.
type NotificationRepository struct {
	store storage.Store
}

// NewNotificationRepository creates a new instance of NotificationRepository.
func NewNotificationRepository(store storage.Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

// GetAllNotifications loads the full notifications dataset.
func (r *NotificationRepository) GetAllNotifications(ctx context.Context) ([]models.Notification, error) {
	notifications := []models.Notification{}
	if err := r.store.Load(ctx, storage.DatasetNotifications, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// SaveAllNotifications replaces the full notifications dataset.
func (r *NotificationRepository) SaveAllNotifications(ctx context.Context, notifications []models.Notification) error {
	return r.store.Save(ctx, storage.DatasetNotifications, notifications)
}
