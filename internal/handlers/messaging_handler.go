package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/services"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/pkg/middleware"
	log "github.com/sirupsen/logrus"
)

// MessagingHandler handles HTTP requests for conversations and messages.
type MessagingHandler struct {
	Service *services.MessagingService
}

// NewMessagingHandler creates a new instance of MessagingHandler.
func NewMessagingHandler(service *services.MessagingService) *MessagingHandler {
	return &MessagingHandler{Service: service}
}

// CreateConversationHandler lets an organization open a conversation with a
// volunteer about one of its opportunities.
func (h *MessagingHandler) CreateConversationHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())

	var req struct {
		VolunteerID      string `json:"volunteerId"`
		OpportunityID    string `json:"opportunityId"`
		OpportunityTitle string `json:"opportunityTitle"`
		OrganizationName string `json:"organizationName"`
		VolunteerName    string `json:"volunteerName"`
		InitialMessage   string `json:"initialMessage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode conversation request")
		respondBadRequest(w, "Invalid request payload")
		return
	}

	conversation, err := h.Service.CreateConversation(r.Context(), services.CreateConversationInput{
		OrganizationID:   claims.UserID,
		VolunteerID:      req.VolunteerID,
		OpportunityID:    req.OpportunityID,
		OpportunityTitle: req.OpportunityTitle,
		OrganizationName: req.OrganizationName,
		VolunteerName:    req.VolunteerName,
		InitialMessage:   req.InitialMessage,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "", map[string]interface{}{
		"conversation": conversation,
	})
}

// ListConversationsHandler lists the caller's conversations with unread
// counts.
func (h *MessagingHandler) ListConversationsHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())

	conversations, err := h.Service.GetConversationsForUser(r.Context(), claims.UserID, claims.Role)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "", map[string]interface{}{
		"conversations": conversations,
	})
}

// GetConversationHandler returns one conversation with its messages, marking
// the caller's unread messages as read.
func (h *MessagingHandler) GetConversationHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	vars := mux.Vars(r)

	conversation, messages, err := h.Service.GetConversationDetails(r.Context(), vars["id"], claims.UserID, claims.Role)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "", map[string]interface{}{
		"conversation": conversation,
		"messages":     messages,
	})
}

// SendMessageHandler appends a message to a conversation.
func (h *MessagingHandler) SendMessageHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	vars := mux.Vars(r)

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "Invalid request payload")
		return
	}

	message, err := h.Service.SendMessage(r.Context(), vars["id"], claims.UserID, req.Text)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if message == nil {
		// empty text is a deliberate no-op, not an error
		respondSuccess(w, "Nothing to send", nil)
		return
	}

	respondSuccess(w, "Message sent", map[string]interface{}{
		"message_data": message,
	})
}
