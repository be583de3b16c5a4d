// File: cmd/server/main.go
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/abudi-09/Chat-App/internal/config"
	"github.com/abudi-09/Chat-App/internal/domain"
	"github.com/abudi-09/Chat-App/internal/handlers"
	"github.com/abudi-09/Chat-App/internal/middleware"
	conversationrepo "github.com/abudi-09/Chat-App/internal/repository/conversation"
	messagerepo "github.com/abudi-09/Chat-App/internal/repository/message"
	userrepo "github.com/abudi-09/Chat-App/internal/repository/user"
	"github.com/abudi-09/Chat-App/internal/services"
	"github.com/abudi-09/Chat-App/internal/services/media"
	"github.com/abudi-09/Chat-App/internal/services/user_services"
	"github.com/abudi-09/Chat-App/internal/ws"
)

func main() {
	cfg := config.Load()

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Message{}, &domain.Conversation{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	logger := services.NewLogger("chat-app")

	// Repositories
	userRepository := userrepo.NewGormUserRepository(db)
	messageRepository := messagerepo.NewMessageRepository(db)
	conversationRepository := conversationrepo.NewConversationRepository(db)

	// Media store
	mediaProvider := media.NewCloudinaryProvider(&media.Config{
		CloudName:    cfg.CloudinaryCloudName,
		UploadPreset: cfg.CloudinaryUploadPreset,
		Timeout:      time.Duration(cfg.MediaUploadTimeoutSecs) * time.Second,
	})
	mediaService := services.NewMediaService(mediaProvider, logger)

	// Realtime gateway
	hub := ws.NewHub(logger)
	dispatcher := ws.NewEventDispatcher(hub.Registry(), logger)

	// Services
	conversationService, err := services.NewConversationService(conversationRepository, logger)
	if err != nil {
		log.Fatalf("Failed to create conversation service: %v", err)
	}
	messageService, err := services.NewMessageService(messageRepository, conversationService, mediaService, dispatcher, logger)
	if err != nil {
		log.Fatalf("Failed to create message service: %v", err)
	}
	authService := user_services.NewAuthService(userRepository, cfg.JWTSecretKey, logger)
	userService := user_services.NewUserService(userRepository, mediaService, logger)

	// Handlers
	secureCookies := strings.ToLower(cfg.Environment) == "production"
	authHandler := handlers.NewAuthHandler(authService, userService, secureCookies)
	messageHandler := handlers.NewMessageHandler(messageService, userService)
	conversationHandler := handlers.NewConversationHandler(conversationService)

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
	})
	r.Use(corsMiddleware(cfg.FrontendURLs))
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		mediaStatus := mediaService.GetProviderStatus()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"media":  map[string]interface{}{"healthy": mediaStatus.IsHealthy},
		})
	}).Methods(http.MethodGet)

	r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		ws.ServeWS(hub, w, req)
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(middleware.NewJWTMiddleware(cfg.JWTSecretKey))
	protected.HandleFunc("/auth/check", authHandler.CheckAuth).Methods(http.MethodGet)
	protected.HandleFunc("/auth/update-profile", authHandler.UpdateProfile).Methods(http.MethodPut)
	protected.HandleFunc("/messages/users", messageHandler.GetUsersForSidebar).Methods(http.MethodGet)
	protected.HandleFunc("/messages/send", messageHandler.SendMessage).Methods(http.MethodPost)
	protected.HandleFunc("/messages/{id:[0-9]+}", messageHandler.GetMessages).Methods(http.MethodGet)
	protected.HandleFunc("/conversations", conversationHandler.GetConversations).Methods(http.MethodGet)
	protected.HandleFunc("/conversations", conversationHandler.CreateConversation).Methods(http.MethodPost)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

// corsMiddleware echoes the request origin back when it is on the allow
// list. Credentials mode requires an exact origin, never a wildcard.
func corsMiddleware(allowedOrigins []string) mux.MiddlewareFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if allowed[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
