package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/config"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/services"
	jwtutil "github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/pkg/jwt"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/pkg/middleware"
	log "github.com/sirupsen/logrus"
)

// UserHandler handles HTTP requests related to user accounts.
type UserHandler struct {
	Service *services.UserService
	Config  *config.Config
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(service *services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		Service: service,
		Config:  cfg,
	}
}

// RegisterUserHandler handles user registration.
func (h *UserHandler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode registration request")
		respondBadRequest(w, "Invalid request payload")
		return
	}

	user, err := h.Service.RegisterUser(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	respondSuccess(w, "Account created", map[string]interface{}{
		"user": user.Public(),
	})
}

// LoginUserHandler handles user login and issues a JWT.
func (h *UserHandler) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.WithError(err).Warn("Failed to decode login request")
		respondBadRequest(w, "Invalid request payload")
		return
	}

	user, err := h.Service.AuthenticateUser(r.Context(), credentials.Email, credentials.Password)
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	token, err := jwtutil.GenerateToken(user.ID, user.Email, user.Role, h.Config.JWTSecret, h.Config.TokenExpiry)
	if err != nil {
		log.WithError(err).Error("Failed to generate JWT token")
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": "Failed to generate token",
		})
		return
	}

	respondSuccess(w, "Logged in", map[string]interface{}{
		"token": token,
		"user":  user.Public(),
	})
}

// GetUserHandler returns the public profile of a user.
func (h *UserHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	user, err := h.Service.GetUser(r.Context(), vars["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "", map[string]interface{}{
		"user": user.Public(),
	})
}

// AdminGetAllUsersHandler lists every account. Admin only.
func (h *UserHandler) AdminGetAllUsersHandler(w http.ResponseWriter, r *http.Request) {
	if claims := middleware.GetUserFromContext(r.Context()); claims == nil {
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"success": false,
			"message": "Unauthorized",
		})
		return
	}

	users, err := h.Service.GetAllUsers(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, "", map[string]interface{}{
		"users": users,
	})
}
