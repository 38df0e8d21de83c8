package repository

import (
	"context"
	"fmt"

	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/storage"
)

// ApplicationRepository handles persistence of volunteer applications.
type ApplicationRepository struct {
	store storage.Store
}

// NewApplicationRepository creates a new instance of ApplicationRepository.
func NewApplicationRepository(store storage.Store) *ApplicationRepository {
	return &ApplicationRepository{store: store}
}

// GetAllApplications loads the full applications dataset.
func (r *ApplicationRepository) GetAllApplications(ctx context.Context) ([]models.VolunteerApplication, error) {
	applications := []models.VolunteerApplication{}
	if err := r.store.Load(ctx, storage.DatasetApplications, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

// GetApplicationByID fetches a single application, or nil if absent.
func (r *ApplicationRepository) GetApplicationByID(ctx context.Context, id string) (*models.VolunteerApplication, error) {
	applications, err := r.GetAllApplications(ctx)
	if err != nil {
		return nil, err
	}
	for i := range applications {
		if applications[i].ID == id {
			return &applications[i], nil
		}
	}
	return nil, nil
}

// FindByOpportunityAndVolunteer returns an existing application for the
// composite key, or nil. Uniqueness of this pair is enforced at submission.
func (r *ApplicationRepository) FindByOpportunityAndVolunteer(ctx context.Context, opportunityID, volunteerID string) (*models.VolunteerApplication, error) {
	applications, err := r.GetAllApplications(ctx)
	if err != nil {
		return nil, err
	}
	for i := range applications {
		if applications[i].OpportunityID == opportunityID && applications[i].VolunteerID == volunteerID {
			return &applications[i], nil
		}
	}
	return nil, nil
}

// CreateApplication appends a new application to the dataset.
func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *models.VolunteerApplication) (*models.VolunteerApplication, error) {
	applications, err := r.GetAllApplications(ctx)
	if err != nil {
		return nil, err
	}
	applications = append(applications, *app)
	if err := r.store.Save(ctx, storage.DatasetApplications, applications); err != nil {
		return nil, fmt.Errorf("failed to create application: %v", err)
	}
	return app, nil
}

// UpdateApplication replaces the stored application with the same ID. The
// full dataset is reloaded immediately before the write to keep the
// lost-update window as small as the storage model allows.
func (r *ApplicationRepository) UpdateApplication(ctx context.Context, app *models.VolunteerApplication) (*models.VolunteerApplication, error) {
	applications, err := r.GetAllApplications(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range applications {
		if applications[i].ID == app.ID {
			applications[i] = *app
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("application %s not found", app.ID)
	}
	if err := r.store.Save(ctx, storage.DatasetApplications, applications); err != nil {
		return nil, fmt.Errorf("failed to update application: %v", err)
	}
	return app, nil
}

// GetApplicationsForVolunteer lists a volunteer's applications.
func (r *ApplicationRepository) GetApplicationsForVolunteer(ctx context.Context, volunteerID string) ([]models.VolunteerApplication, error) {
	applications, err := r.GetAllApplications(ctx)
	if err != nil {
		return nil, err
	}
	matched := []models.VolunteerApplication{}
	for _, app := range applications {
		if app.VolunteerID == volunteerID {
			matched = append(matched, app)
		}
	}
	return matched, nil
}

// GetApplicationsForOpportunity lists the applications to one opportunity.
func (r *ApplicationRepository) GetApplicationsForOpportunity(ctx context.Context, opportunityID string) ([]models.VolunteerApplication, error) {
	applications, err := r.GetAllApplications(ctx)
	if err != nil {
		return nil, err
	}
	matched := []models.VolunteerApplication{}
	for _, app := range applications {
		if app.OpportunityID == opportunityID {
			matched = append(matched, app)
		}
	}
	return matched, nil
}
