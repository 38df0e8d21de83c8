package repository

import (
	"context"

	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/storage"
)

// ConversationRepository handles persistence of conversations. The messaging
// service loads the full dataset, mutates in memory and writes it back, so
// the repository only exposes whole-dataset access plus read-only finders.
type ConversationRepository struct {
	store storage.Store
}

// NewConversationRepository creates a new instance of ConversationRepository.
func NewConversationRepository(store storage.Store) *ConversationRepository {
	return &ConversationRepository{store: store}
}

// GetAllConversations loads the full conversations dataset.
func (r *ConversationRepository) GetAllConversations(ctx context.Context) ([]models.Conversation, error) {
	conversations := []models.Conversation{}
	if err := r.store.Load(ctx, storage.DatasetConversations, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// SaveAllConversations replaces the full conversations dataset.
func (r *ConversationRepository) SaveAllConversations(ctx context.Context, conversations []models.Conversation) error {
	return r.store.Save(ctx, storage.DatasetConversations, conversations)
}
