package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/models"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/services"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/pkg/middleware"
	log "github.com/sirupsen/logrus"
)

// OpportunityHandler handles HTTP requests related to opportunities.
type OpportunityHandler struct {
	Service *services.OpportunityService
}

// NewOpportunityHandler creates a new instance of OpportunityHandler.
func NewOpportunityHandler(service *services.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{Service: service}
}

// CreateOpportunityHandler lets an organization post a new opportunity.
func (h *OpportunityHandler) CreateOpportunityHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"success": false, "message": "Unauthorized",
		})
		return
	}

	var req struct {
		Title            string `json:"title"`
		Description      string `json:"description"`
		Location         string `json:"location"`
		Category         string `json:"category"`
		PointsAwarded    int    `json:"pointsAwarded"`
		OrganizationName string `json:"organizationName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode opportunity request")
		respondBadRequest(w, "Invalid request payload")
		return
	}

	opp := &models.Opportunity{
		OrganizationID:   claims.UserID,
		OrganizationName: req.OrganizationName,
		Title:            req.Title,
		Description:      req.Description,
		Location:         req.Location,
		Category:         req.Category,
		PointsAwarded:    req.PointsAwarded,
	}

	created, err := h.Service.CreateOpportunity(r.Context(), opp)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	respondSuccess(w, "Opportunity created", map[string]interface{}{
		"opportunity": created,
	})
}

// ListOpportunitiesHandler supports keyword and category search.
func (h *OpportunityHandler) ListOpportunitiesHandler(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	opportunities, err := h.Service.SearchOpportunities(r.Context(), keyword, category)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "", map[string]interface{}{
		"opportunities": opportunities,
	})
}

// GetOpportunityHandler fetches one opportunity by ID.
func (h *OpportunityHandler) GetOpportunityHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	opp, err := h.Service.GetOpportunity(r.Context(), vars["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "", map[string]interface{}{
		"opportunity": opp,
	})
}
