package models

import (
	"time"
)

// Opportunity is a volunteer position posted by an organization.
type Opportunity struct {
	ID               string    `json:"id"`
	OrganizationID   string    `json:"organizationId"`
	OrganizationName string    `json:"organizationName"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	Category         string    `json:"category"`
	PointsAwarded    int       `json:"pointsAwarded"` // granted on completed participation
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
