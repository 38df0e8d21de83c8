package models

import (
	"time"
)

// Application lifecycle states.
const (
	ApplicationSubmitted = "submitted"
	ApplicationAccepted  = "accepted"
	ApplicationRejected  = "rejected"
	ApplicationWithdrawn = "withdrawn"
	ApplicationCompleted = "completed"
)

// Attendance values recorded by the organization after the event.
const (
	AttendancePending = "pending"
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// VolunteerApplication is a volunteer's application to an opportunity.
// OpportunityTitle is denormalized for display and is not refreshed if the
// opportunity is renamed later.
type VolunteerApplication struct {
	ID               string    `json:"id"`
	OpportunityID    string    `json:"opportunityId"`
	OpportunityTitle string    `json:"opportunityTitle"`
	VolunteerID      string    `json:"volunteerId"`
	ApplicantName    string    `json:"applicantName"`
	ApplicantEmail   string    `json:"applicantEmail"`
	ResumeURL        string    `json:"resumeUrl,omitempty"`
	CoverLetter      string    `json:"coverLetter,omitempty"`
	Status           string    `json:"status"`
	SubmittedAt      time.Time `json:"submittedAt"`
	Attendance       string    `json:"attendance,omitempty"`
	OrgRating        int       `json:"orgRating,omitempty"`      // 1-5, 0 means unrated
	HoursLoggedByOrg float64   `json:"hoursLoggedByOrg,omitempty"`
}
