package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/repository"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/storage"
)

// testEnv wires every service against a throwaway file store, the same
// backend production defaults to.
type testEnv struct {
	store         storage.Store
	users         *repository.UserRepository
	opportunities *repository.OpportunityRepository
	Users         *UserService
	Gamification  *GamificationService
	Messaging     *MessagingService
	Notifications *NotificationService
	Applications  *ApplicationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(store)
	opportunityRepo := repository.NewOpportunityRepository(store)
	applicationRepo := repository.NewApplicationRepository(store)
	conversationRepo := repository.NewConversationRepository(store)
	gamificationRepo := repository.NewGamificationRepository(store)
	notificationRepo := repository.NewNotificationRepository(store)

	notifications := NewNotificationService(notificationRepo)
	gamification := NewGamificationService(gamificationRepo, userRepo)
	messaging := NewMessagingService(conversationRepo, notifications)
	applications := NewApplicationService(applicationRepo, opportunityRepo, messaging, gamification, notifications)

	return &testEnv{
		store:         store,
		users:         userRepo,
		opportunities: opportunityRepo,
		Users:         NewUserService(userRepo),
		Gamification:  gamification,
		Messaging:     messaging,
		Notifications: notifications,
		Applications:  applications,
	}
}

func (e *testEnv) seedUser(t *testing.T, id, name, role string) {
	t.Helper()
	now := time.Now()
	_, err := e.users.CreateUser(context.Background(), &models.User{
		ID:        id,
		Name:      name,
		Email:     id + "@example.com",
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
}

func (e *testEnv) seedOpportunity(t *testing.T, id, organizationID, title string, points int) {
	t.Helper()
	now := time.Now()
	_, err := e.opportunities.CreateOpportunity(context.Background(), &models.Opportunity{
		ID:             id,
		OrganizationID: organizationID,
		Title:          title,
		PointsAwarded:  points,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	require.NoError(t, err)
}

// gamificationLog reads the raw audit log back for assertions.
func (e *testEnv) gamificationLog(t *testing.T) []models.GamificationLogEntry {
	t.Helper()
	log := []models.GamificationLogEntry{}
	require.NoError(t, e.store.Load(context.Background(), storage.DatasetGamificationLog, &log))
	return log
}
