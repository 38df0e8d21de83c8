package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/services"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/pkg/middleware"
	log "github.com/sirupsen/logrus"
)

// ApplicationHandler handles HTTP requests for the application workflow.
type ApplicationHandler struct {
	Service *services.ApplicationService
}

// NewApplicationHandler creates a new instance of ApplicationHandler.
func NewApplicationHandler(service *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Service: service}
}

// SubmitApplicationHandler lets a volunteer apply to an opportunity.
func (h *ApplicationHandler) SubmitApplicationHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"success": false, "message": "Unauthorized",
		})
		return
	}

	var req struct {
		OpportunityID string `json:"opportunityId"`
		ApplicantName string `json:"applicantName"`
		ResumeURL     string `json:"resumeUrl"`
		CoverLetter   string `json:"coverLetter"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode application request")
		respondBadRequest(w, "Invalid request payload")
		return
	}

	application, err := h.Service.SubmitApplication(r.Context(),
		req.OpportunityID, claims.UserID, req.ApplicantName, claims.Email, req.ResumeURL, req.CoverLetter)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "Application submitted", map[string]interface{}{
		"application": application,
	})
}

// AcceptApplicationHandler lets the owning organization accept an
// application.
func (h *ApplicationHandler) AcceptApplicationHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	vars := mux.Vars(r)

	var req struct {
		OrganizationName string `json:"organizationName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "Invalid request payload")
		return
	}

	result, err := h.Service.AcceptApplication(r.Context(), vars["id"], claims.UserID, req.OrganizationName)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "Application accepted", map[string]interface{}{
		"application":    result.Application,
		"conversationId": result.ConversationID,
	})
}

// RejectApplicationHandler lets the owning organization reject an
// application.
func (h *ApplicationHandler) RejectApplicationHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	vars := mux.Vars(r)

	application, err := h.Service.RejectApplication(r.Context(), vars["id"], claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "Application rejected", map[string]interface{}{
		"application": application,
	})
}

// RecordPerformanceHandler stores attendance, rating and hours after the
// event.
func (h *ApplicationHandler) RecordPerformanceHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	vars := mux.Vars(r)

	var req struct {
		Attendance       string  `json:"attendance"`
		OrgRating        int     `json:"orgRating"`
		HoursLoggedByOrg float64 `json:"hoursLoggedByOrg"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "Invalid request payload")
		return
	}

	application, err := h.Service.RecordPerformance(r.Context(), vars["id"], claims.UserID, services.PerformanceInput{
		Attendance:       req.Attendance,
		OrgRating:        req.OrgRating,
		HoursLoggedByOrg: req.HoursLoggedByOrg,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "Performance recorded", map[string]interface{}{
		"application": application,
	})
}

// MyApplicationsHandler lists the authenticated volunteer's applications.
func (h *ApplicationHandler) MyApplicationsHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())

	applications, err := h.Service.GetApplicationsForVolunteer(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "", map[string]interface{}{
		"applications": applications,
	})
}

// OpportunityApplicationsHandler lists the applications to one opportunity
// the organization owns.
func (h *ApplicationHandler) OpportunityApplicationsHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	vars := mux.Vars(r)

	applications, err := h.Service.GetApplicationsForOpportunity(r.Context(), vars["id"], claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "", map[string]interface{}{
		"applications": applications,
	})
}
