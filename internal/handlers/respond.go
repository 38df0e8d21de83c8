package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/services"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/pkg/logger"
)

// respondJSON writes the standard {success, message, ...} envelope the UI
// branches on.
func respondJSON(w http.ResponseWriter, status int, payload map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondSuccess(w http.ResponseWriter, message string, data map[string]interface{}) {
	payload := map[string]interface{}{
		"success": true,
		"message": message,
	}
	for k, v := range data {
		payload[k] = v
	}
	respondJSON(w, http.StatusOK, payload)
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Anything unrecognized is treated as a persistence or internal failure.
func respondServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrDuplicateApplication):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.Log.WithError(err).Error("Request failed")
	}

	respondJSON(w, status, map[string]interface{}{
		"success": false,
		"message": err.Error(),
	})
}

func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
