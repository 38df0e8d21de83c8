package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/storage"
)

// OpportunityRepository handles persistence of volunteer opportunities.
type OpportunityRepository struct {
	store storage.Store
}

// NewOpportunityRepository creates a new instance of OpportunityRepository.
func NewOpportunityRepository(store storage.Store) *OpportunityRepository {
	return &OpportunityRepository{store: store}
}

// GetAllOpportunities loads the full opportunities dataset.
func (r *OpportunityRepository) GetAllOpportunities(ctx context.Context) ([]models.Opportunity, error) {
	opportunities := []models.Opportunity{}
	if err := r.store.Load(ctx, storage.DatasetOpportunities, &opportunities); err != nil {
		return nil, err
	}
	return opportunities, nil
}

// GetOpportunityByID fetches a single opportunity, or nil if absent.
func (r *OpportunityRepository) GetOpportunityByID(ctx context.Context, id string) (*models.Opportunity, error) {
	opportunities, err := r.GetAllOpportunities(ctx)
	if err != nil {
		return nil, err
	}
	for i := range opportunities {
		if opportunities[i].ID == id {
			return &opportunities[i], nil
		}
	}
	return nil, nil
}

// CreateOpportunity appends a new opportunity to the dataset.
func (r *OpportunityRepository) CreateOpportunity(ctx context.Context, opp *models.Opportunity) (*models.Opportunity, error) {
	opportunities, err := r.GetAllOpportunities(ctx)
	if err != nil {
		return nil, err
	}
	opportunities = append(opportunities, *opp)
	if err := r.store.Save(ctx, storage.DatasetOpportunities, opportunities); err != nil {
		return nil, fmt.Errorf("failed to create opportunity: %v", err)
	}
	return opp, nil
}

// SearchOpportunities filters the dataset by keyword (title/description) and
// optional category.
func (r *OpportunityRepository) SearchOpportunities(ctx context.Context, keyword, category string) ([]models.Opportunity, error) {
	opportunities, err := r.GetAllOpportunities(ctx)
	if err != nil {
		return nil, err
	}

	keyword = strings.ToLower(keyword)
	matched := []models.Opportunity{}
	for _, opp := range opportunities {
		if category != "" && opp.Category != category {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(opp.Title), keyword) &&
			!strings.Contains(strings.ToLower(opp.Description), keyword) {
			continue
		}
		matched = append(matched, opp)
	}
	return matched, nil
}
