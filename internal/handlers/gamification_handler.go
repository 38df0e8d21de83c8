package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/services"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/pkg/middleware"
)

// GamificationHandler handles HTTP requests for stats and the leaderboard.
type GamificationHandler struct {
	Service *services.GamificationService
}

// NewGamificationHandler creates a new instance of GamificationHandler.
func NewGamificationHandler(service *services.GamificationService) *GamificationHandler {
	return &GamificationHandler{Service: service}
}

// MyStatsHandler returns the caller's points, hours and badges.
func (h *GamificationHandler) MyStatsHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())

	stats, err := h.Service.GetUserStats(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "", map[string]interface{}{
		"stats": stats,
	})
}

// UserStatsHandler returns the stats of any user; a user with no awards gets
// the zero state.
func (h *GamificationHandler) UserStatsHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stats, err := h.Service.GetUserStats(r.Context(), vars["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "", map[string]interface{}{
		"stats": stats,
	})
}

// LeaderboardHandler returns the top volunteers by points.
func (h *GamificationHandler) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondBadRequest(w, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	leaderboard, err := h.Service.GetLeaderboard(r.Context(), limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "", map[string]interface{}{
		"leaderboard": leaderboard,
	})
}

// MyGamificationLogHandler returns the caller's award audit trail.
func (h *GamificationHandler) MyGamificationLogHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())

	log, err := h.Service.GetUserLog(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "", map[string]interface{}{
		"log": log,
	})
}
