package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/repository"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/pkg/email"
	"github.com/sirupsen/logrus"
)

// Point policy for the application lifecycle.
const (
	ApplyPoints     = 5  // for submitting an application
	AcceptanceBonus = 10 // for being accepted
	FiveStarBonus   = 20
	FourStarBonus   = 10
)

// PerformanceInput carries what the organization records after the event.
type PerformanceInput struct {
	Attendance       string
	OrgRating        int
	HoursLoggedByOrg float64
}

// AcceptResult is what AcceptApplication hands back to the caller.
type AcceptResult struct {
	Application    *models.VolunteerApplication
	ConversationID string
}

// ApplicationService orchestrates the application state machine and its side
// effects on messaging, gamification and notifications. The primary status
// mutation is persisted first; secondary side effects that fail afterwards
// are logged and never rolled back (at-least-once, not exactly-once).
type ApplicationService struct {
	repo                *repository.ApplicationRepository
	opportunityRepo     *repository.OpportunityRepository
	Messaging           *MessagingService
	Gamification        *GamificationService
	NotificationService *NotificationService
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(
	repo *repository.ApplicationRepository,
	opportunityRepo *repository.OpportunityRepository,
	messaging *MessagingService,
	gamification *GamificationService,
	notificationService *NotificationService,
) *ApplicationService {
	return &ApplicationService{
		repo:                repo,
		opportunityRepo:     opportunityRepo,
		Messaging:           messaging,
		Gamification:        gamification,
		NotificationService: notificationService,
	}
}

// SubmitApplication creates a new application in the submitted state. A
// volunteer can apply to each opportunity only once; a second attempt fails
// with ErrDuplicateApplication. Submitting earns a small fixed point award.
func (s *ApplicationService) SubmitApplication(ctx context.Context, opportunityID, volunteerID, applicantName, applicantEmail, resumeURL, coverLetter string) (*models.VolunteerApplication, error) {
	opportunity, err := s.opportunityRepo.GetOpportunityByID(ctx, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load opportunity: %v", err)
	}
	if opportunity == nil {
		return nil, fmt.Errorf("opportunity %s: %w", opportunityID, ErrNotFound)
	}

	existing, err := s.repo.FindByOpportunityAndVolunteer(ctx, opportunityID, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate application: %v", err)
	}
	if existing != nil {
		return nil, ErrDuplicateApplication
	}

	application := &models.VolunteerApplication{
		ID:               uuid.NewString(),
		OpportunityID:    opportunityID,
		OpportunityTitle: opportunity.Title,
		VolunteerID:      volunteerID,
		ApplicantName:    applicantName,
		ApplicantEmail:   applicantEmail,
		ResumeURL:        resumeURL,
		CoverLetter:      coverLetter,
		Status:           models.ApplicationSubmitted,
		SubmittedAt:      time.Now(),
		Attendance:       models.AttendancePending,
	}

	if _, err := s.repo.CreateApplication(ctx, application); err != nil {
		return nil, err
	}

	if _, err := s.Gamification.AddPoints(ctx, volunteerID, ApplyPoints,
		fmt.Sprintf("Applied to \"%s\"", opportunity.Title)); err != nil {
		logrus.WithError(err).Warn("Failed to award application points")
	}

	logrus.WithFields(logrus.Fields{
		"application_id": application.ID,
		"opportunity_id": opportunityID,
		"volunteer_id":   volunteerID,
	}).Info("Application submitted")

	return application, nil
}

// AcceptApplication moves a submitted application to accepted and runs the
// acceptance side effects in order: seed a conversation with the volunteer,
// award the acceptance bonus, notify the volunteer with a link to the new
// conversation, and send a best-effort email. Each side-effect failure is
// logged and skipped; the accepted status stands regardless.
func (s *ApplicationService) AcceptApplication(ctx context.Context, applicationID, organizationID, organizationName string) (*AcceptResult, error) {
	application, err := s.repo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load application: %v", err)
	}
	if application == nil {
		return nil, fmt.Errorf("application %s: %w", applicationID, ErrNotFound)
	}

	opportunity, err := s.opportunityRepo.GetOpportunityByID(ctx, application.OpportunityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load opportunity: %v", err)
	}
	if opportunity == nil {
		return nil, fmt.Errorf("opportunity %s: %w", application.OpportunityID, ErrNotFound)
	}
	if opportunity.OrganizationID != organizationID {
		return nil, fmt.Errorf("organization %s does not own opportunity %s: %w", organizationID, opportunity.ID, ErrAccessDenied)
	}

	if application.Status != models.ApplicationSubmitted {
		return nil, fmt.Errorf("application %s is %s, only submitted applications can be accepted", applicationID, application.Status)
	}

	application.Status = models.ApplicationAccepted
	if _, err := s.repo.UpdateApplication(ctx, application); err != nil {
		return nil, err
	}

	result := &AcceptResult{Application: application}

	conversation, err := s.Messaging.CreateConversation(ctx, CreateConversationInput{
		OrganizationID:   organizationID,
		VolunteerID:      application.VolunteerID,
		OpportunityID:    application.OpportunityID,
		OpportunityTitle: application.OpportunityTitle,
		OrganizationName: organizationName,
		VolunteerName:    application.ApplicantName,
		InitialMessage: fmt.Sprintf("Congratulations! Your application for \"%s\" has been accepted. We look forward to seeing you.",
			application.OpportunityTitle),
	})
	if err != nil {
		logrus.WithError(err).Error("Failed to create acceptance conversation")
	} else {
		result.ConversationID = conversation.ID
	}

	if _, err := s.Gamification.AddPoints(ctx, application.VolunteerID, AcceptanceBonus,
		fmt.Sprintf("Accepted for \"%s\"", application.OpportunityTitle)); err != nil {
		logrus.WithError(err).Warn("Failed to award acceptance bonus")
	}

	link := ""
	if result.ConversationID != "" {
		link = "/conversations/" + result.ConversationID
	}
	if _, err := s.NotificationService.Create(ctx, application.VolunteerID,
		fmt.Sprintf("Your application for \"%s\" was accepted!", application.OpportunityTitle), link); err != nil {
		logrus.WithError(err).Warn("Failed to notify volunteer of acceptance")
	}

	if application.ApplicantEmail != "" {
		if err := email.SendEmail(application.ApplicantEmail, "Application accepted",
			fmt.Sprintf("Good news, %s!\n\nYour application for \"%s\" has been accepted by %s.",
				application.ApplicantName, application.OpportunityTitle, organizationName)); err != nil {
			logrus.WithError(err).Warn("Failed to send acceptance email")
		}
	}

	logrus.WithFields(logrus.Fields{
		"application_id":  applicationID,
		"conversation_id": result.ConversationID,
	}).Info("Application accepted")

	return result, nil
}

// RejectApplication moves a submitted application to rejected and notifies
// the volunteer. No gamification effect.
func (s *ApplicationService) RejectApplication(ctx context.Context, applicationID, organizationID string) (*models.VolunteerApplication, error) {
	application, err := s.repo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load application: %v", err)
	}
	if application == nil {
		return nil, fmt.Errorf("application %s: %w", applicationID, ErrNotFound)
	}

	opportunity, err := s.opportunityRepo.GetOpportunityByID(ctx, application.OpportunityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load opportunity: %v", err)
	}
	if opportunity == nil || opportunity.OrganizationID != organizationID {
		return nil, fmt.Errorf("organization %s does not own application %s: %w", organizationID, applicationID, ErrAccessDenied)
	}

	if application.Status != models.ApplicationSubmitted {
		return nil, fmt.Errorf("application %s is %s, only submitted applications can be rejected", applicationID, application.Status)
	}

	application.Status = models.ApplicationRejected
	if _, err := s.repo.UpdateApplication(ctx, application); err != nil {
		return nil, err
	}

	if _, err := s.NotificationService.Create(ctx, application.VolunteerID,
		fmt.Sprintf("Your application for \"%s\" was not selected this time.", application.OpportunityTitle), ""); err != nil {
		logrus.WithError(err).Warn("Failed to notify volunteer of rejection")
	}

	logrus.WithField("application_id", applicationID).Info("Application rejected")
	return application, nil
}

// RecordPerformance stores the organization's post-event record. When the
// volunteer was present the application completes: completion points come
// from the opportunity's configured award, a rating of four or five stars
// earns a bonus, and the logged hours go through the gamification ledger
// (which may cascade badge awards). An absent volunteer only gets the
// attendance and rating recorded, with no gamification at all.
func (s *ApplicationService) RecordPerformance(ctx context.Context, applicationID, organizationID string, input PerformanceInput) (*models.VolunteerApplication, error) {
	application, err := s.repo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load application: %v", err)
	}
	if application == nil {
		return nil, fmt.Errorf("application %s: %w", applicationID, ErrNotFound)
	}

	opportunity, err := s.opportunityRepo.GetOpportunityByID(ctx, application.OpportunityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load opportunity: %v", err)
	}
	if opportunity == nil || opportunity.OrganizationID != organizationID {
		return nil, fmt.Errorf("organization %s does not own application %s: %w", organizationID, applicationID, ErrAccessDenied)
	}

	if application.Status != models.ApplicationAccepted {
		return nil, fmt.Errorf("application %s is %s, performance can only be recorded for accepted applications", applicationID, application.Status)
	}

	application.Attendance = input.Attendance
	application.OrgRating = input.OrgRating
	application.HoursLoggedByOrg = input.HoursLoggedByOrg

	if input.Attendance != models.AttendancePresent {
		if _, err := s.repo.UpdateApplication(ctx, application); err != nil {
			return nil, err
		}
		logrus.WithField("application_id", applicationID).Info("Attendance recorded without completion")
		return application, nil
	}

	application.Status = models.ApplicationCompleted
	if _, err := s.repo.UpdateApplication(ctx, application); err != nil {
		return nil, err
	}

	if _, err := s.Gamification.AddPoints(ctx, application.VolunteerID, opportunity.PointsAwarded,
		fmt.Sprintf("Completed \"%s\"", application.OpportunityTitle)); err != nil {
		logrus.WithError(err).Warn("Failed to award completion points")
	}

	bonus := 0
	switch {
	case input.OrgRating >= 5:
		bonus = FiveStarBonus
	case input.OrgRating == 4:
		bonus = FourStarBonus
	}
	if bonus > 0 {
		if _, err := s.Gamification.AddPoints(ctx, application.VolunteerID, bonus,
			fmt.Sprintf("Received a %d-star rating for \"%s\"", input.OrgRating, application.OpportunityTitle)); err != nil {
			logrus.WithError(err).Warn("Failed to award rating bonus")
		}
	}

	if _, err := s.Gamification.LogHours(ctx, application.VolunteerID, input.HoursLoggedByOrg,
		fmt.Sprintf("Hours for \"%s\"", application.OpportunityTitle)); err != nil {
		logrus.WithError(err).Warn("Failed to log volunteer hours")
	}

	if _, err := s.NotificationService.Create(ctx, application.VolunteerID,
		fmt.Sprintf("Thank you for volunteering at \"%s\"! Your participation is complete.", application.OpportunityTitle), ""); err != nil {
		logrus.WithError(err).Warn("Failed to send completion notification")
	}

	logrus.WithFields(logrus.Fields{
		"application_id": applicationID,
		"hours":          input.HoursLoggedByOrg,
		"rating":         input.OrgRating,
	}).Info("Performance recorded, application completed")

	return application, nil
}

// GetApplicationsForVolunteer lists a volunteer's own applications.
func (s *ApplicationService) GetApplicationsForVolunteer(ctx context.Context, volunteerID string) ([]models.VolunteerApplication, error) {
	return s.repo.GetApplicationsForVolunteer(ctx, volunteerID)
}

// GetApplicationsForOpportunity lists the applications to an opportunity the
// organization owns.
func (s *ApplicationService) GetApplicationsForOpportunity(ctx context.Context, opportunityID, organizationID string) ([]models.VolunteerApplication, error) {
	opportunity, err := s.opportunityRepo.GetOpportunityByID(ctx, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load opportunity: %v", err)
	}
	if opportunity == nil {
		return nil, fmt.Errorf("opportunity %s: %w", opportunityID, ErrNotFound)
	}
	if opportunity.OrganizationID != organizationID {
		return nil, fmt.Errorf("organization %s does not own opportunity %s: %w", organizationID, opportunityID, ErrAccessDenied)
	}
	return s.repo.GetApplicationsForOpportunity(ctx, opportunityID)
}
