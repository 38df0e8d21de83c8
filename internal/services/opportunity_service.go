package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/repository"
	"github.com/sirupsen/logrus"
)

// OpportunityService encapsulates the business logic for opportunities.
type OpportunityService struct {
	repo *repository.OpportunityRepository
}

// NewOpportunityService creates a new instance of OpportunityService.
func NewOpportunityService(repo *repository.OpportunityRepository) *OpportunityService {
	return &OpportunityService{repo: repo}
}

// CreateOpportunity stores a new opportunity posted by an organization.
func (s *OpportunityService) CreateOpportunity(ctx context.Context, opp *models.Opportunity) (*models.Opportunity, error) {
	if opp.Title == "" {
		logrus.Warn("Opportunity title is empty during creation")
		return nil, fmt.Errorf("opportunity title is required")
	}
	if opp.PointsAwarded < 0 {
		return nil, fmt.Errorf("pointsAwarded cannot be negative")
	}

	now := time.Now()
	opp.ID = uuid.NewString()
	opp.CreatedAt = now
	opp.UpdatedAt = now

	created, err := s.repo.CreateOpportunity(ctx, opp)
	if err != nil {
		logrus.WithError(err).Error("Failed to create opportunity")
		return nil, fmt.Errorf("failed to create opportunity: %v", err)
	}

	logrus.WithField("opportunity_id", created.ID).Info("Opportunity created")
	return created, nil
}

// GetOpportunity retrieves an opportunity by ID.
func (s *OpportunityService) GetOpportunity(ctx context.Context, id string) (*models.Opportunity, error) {
	opp, err := s.repo.GetOpportunityByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get opportunity: %v", err)
	}
	if opp == nil {
		return nil, fmt.Errorf("opportunity %s: %w", id, ErrNotFound)
	}
	return opp, nil
}

// SearchOpportunities lists opportunities matching an optional keyword and
// category.
func (s *OpportunityService) SearchOpportunities(ctx context.Context, keyword, category string) ([]models.Opportunity, error) {
	return s.repo.SearchOpportunities(ctx, keyword, category)
}
