package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/config"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/database"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/handlers"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/repository"
	cronjobs "github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/scheduler"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/services"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/internal/storage"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/pkg/logger"
	"github.com/muhhuz-coder/volunteerBazaarFullstack-sub001/pkg/middleware"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Pick the dataset store backend
	var store storage.Store
	switch cfg.StorageDriver {
	case "mongo":
		db, err := database.ConnectDB(cfg)
		if err != nil {
			log.Fatalf("Database connection error: %v", err)
		}
		store = storage.NewMongoStore(db)
	default:
		fileStore, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Data directory error: %v", err)
		}
		store = fileStore
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(store)
	opportunityRepo := repository.NewOpportunityRepository(store)
	applicationRepo := repository.NewApplicationRepository(store)
	conversationRepo := repository.NewConversationRepository(store)
	gamificationRepo := repository.NewGamificationRepository(store)
	notificationRepo := repository.NewNotificationRepository(store)

	// --- Services ---
	userService := services.NewUserService(userRepo)
	opportunityService := services.NewOpportunityService(opportunityRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	gamificationService := services.NewGamificationService(gamificationRepo, userRepo)
	messagingService := services.NewMessagingService(conversationRepo, notificationService)
	applicationService := services.NewApplicationService(
		applicationRepo, opportunityRepo, messagingService, gamificationService, notificationService)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, cfg)
	opportunityHandler := handlers.NewOpportunityHandler(opportunityService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	messagingHandler := handlers.NewMessagingHandler(messagingService)
	gamificationHandler := handlers.NewGamificationHandler(gamificationService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Public user routes
	router.HandleFunc("/users/register", userHandler.RegisterUserHandler).Methods("POST")
	router.HandleFunc("/users/login", userHandler.LoginUserHandler).Methods("POST")

	// Public opportunity browsing
	router.HandleFunc("/opportunities", opportunityHandler.ListOpportunitiesHandler).Methods("GET")
	router.HandleFunc("/opportunities/{id}", opportunityHandler.GetOpportunityHandler).Methods("GET")
	router.HandleFunc("/leaderboard", gamificationHandler.LeaderboardHandler).Methods("GET")

	// Protected user routes
	protectedUserRoutes := router.PathPrefix("/users").Subrouter()
	protectedUserRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedUserRoutes.HandleFunc("/{id}", userHandler.GetUserHandler).Methods("GET")

	// Opportunity management (organizations only)
	orgOpportunityRoutes := router.PathPrefix("/opportunities").Subrouter()
	orgOpportunityRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	orgOpportunityRoutes.Use(middleware.RequireRole("organization"))
	orgOpportunityRoutes.HandleFunc("", opportunityHandler.CreateOpportunityHandler).Methods("POST")
	orgOpportunityRoutes.HandleFunc("/{id}/applications", applicationHandler.OpportunityApplicationsHandler).Methods("GET")

	// Application workflow
	applicationRoutes := router.PathPrefix("/applications").Subrouter()
	applicationRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	applicationRoutes.HandleFunc("", applicationHandler.SubmitApplicationHandler).Methods("POST")
	applicationRoutes.HandleFunc("/mine", applicationHandler.MyApplicationsHandler).Methods("GET")
	applicationRoutes.HandleFunc("/{id}/accept", applicationHandler.AcceptApplicationHandler).Methods("POST")
	applicationRoutes.HandleFunc("/{id}/reject", applicationHandler.RejectApplicationHandler).Methods("POST")
	applicationRoutes.HandleFunc("/{id}/performance", applicationHandler.RecordPerformanceHandler).Methods("POST")

	// Conversations
	conversationRoutes := router.PathPrefix("/conversations").Subrouter()
	conversationRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	conversationRoutes.HandleFunc("", messagingHandler.CreateConversationHandler).Methods("POST")
	conversationRoutes.HandleFunc("", messagingHandler.ListConversationsHandler).Methods("GET")
	conversationRoutes.HandleFunc("/{id}", messagingHandler.GetConversationHandler).Methods("GET")
	conversationRoutes.HandleFunc("/{id}/messages", messagingHandler.SendMessageHandler).Methods("POST")

	// Gamification
	gamificationRoutes := router.PathPrefix("/gamification").Subrouter()
	gamificationRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	gamificationRoutes.HandleFunc("/stats", gamificationHandler.MyStatsHandler).Methods("GET")
	gamificationRoutes.HandleFunc("/stats/{id}", gamificationHandler.UserStatsHandler).Methods("GET")
	gamificationRoutes.HandleFunc("/log", gamificationHandler.MyGamificationLogHandler).Methods("GET")

	// Notifications
	notificationRoutes := router.PathPrefix("/notifications").Subrouter()
	notificationRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	notificationRoutes.HandleFunc("", notificationHandler.ListNotificationsHandler).Methods("GET")
	notificationRoutes.HandleFunc("/read-all", notificationHandler.MarkAllReadHandler).Methods("POST")
	notificationRoutes.HandleFunc("/{id}/read", notificationHandler.MarkAsReadHandler).Methods("POST")

	// Admin routes
	adminRoutes := router.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	adminRoutes.Use(middleware.RequireRole("admin"))
	adminRoutes.HandleFunc("/users", userHandler.AdminGetAllUsersHandler).Methods("GET")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Periodic notification cleanup
	cronjobs.StartNotificationCronJobs(notificationService)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
