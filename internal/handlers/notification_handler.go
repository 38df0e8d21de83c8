package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/services"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/pkg/middleware"
)

// NotificationHandler handles HTTP requests for the notification side
// channel.
type NotificationHandler struct {
	Service *services.NotificationService
}

// NewNotificationHandler creates a new instance of NotificationHandler.
func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// ListNotificationsHandler returns the caller's notifications, newest first.
func (h *NotificationHandler) ListNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())

	notifications, err := h.Service.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "", map[string]interface{}{
		"notifications": notifications,
	})
}

// MarkAsReadHandler flips one notification's read flag. Marking a missing or
// foreign notification is not an error; the response says whether anything
// changed.
func (h *NotificationHandler) MarkAsReadHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	vars := mux.Vars(r)

	notification, err := h.Service.MarkRead(r.Context(), vars["id"], claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if notification == nil {
		respondSuccess(w, "No matching notification", nil)
		return
	}
	respondSuccess(w, "Notification marked as read", map[string]interface{}{
		"notification": notification,
	})
}

// MarkAllReadHandler flips all of the caller's unread notifications.
func (h *NotificationHandler) MarkAllReadHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())

	count, err := h.Service.MarkAllRead(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "Notifications marked as read", map[string]interface{}{
		"count": count,
	})
}
