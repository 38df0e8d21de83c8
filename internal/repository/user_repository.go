package repository

import (
	"context"
	"fmt"

	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/storage"
)

// UserRepository handles persistence of user accounts.
type UserRepository struct {
	store storage.Store
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

// GetAllUsers loads the full users dataset.
func (r *UserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.store.Load(ctx, storage.DatasetUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveAllUsers replaces the full users dataset.
func (r *UserRepository) SaveAllUsers(ctx context.Context, users []models.User) error {
	return r.store.Save(ctx, storage.DatasetUsers, users)
}

// GetUserByID fetches a single user, or nil if absent.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// GetUserByEmail fetches a single user by email, or nil if absent.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// CreateUser appends a new user to the dataset.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	users, err := r.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	users = append(users, *user)
	if err := r.SaveAllUsers(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to create user: %v", err)
	}
	return user, nil
}
