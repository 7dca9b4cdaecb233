// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/nequibot/chat-message-api/internal/config"
	"github.com/nequibot/chat-message-api/internal/domain"
	"github.com/nequibot/chat-message-api/internal/handlers"
	"github.com/nequibot/chat-message-api/internal/middleware"
	"github.com/nequibot/chat-message-api/internal/ratelimit"
	messagerepo "github.com/nequibot/chat-message-api/internal/repository/message"
	"github.com/nequibot/chat-message-api/internal/services"
	messagesvc "github.com/nequibot/chat-message-api/internal/services/message"
)

func main() {
	cfg := config.Load()
	logger := services.NewProductionLogger("chat-message-api")

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(&domain.Message{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	// --- Repositories ---
	messageRepo := messagerepo.NewMessageRepository(db)

	// --- Services ---
	messageService, err := messagesvc.NewService(messageRepo, &messagesvc.Config{
		BannedWords:     cfg.BannedWords,
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
	}, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Message Service: %v", err)
	}

	// --- Handlers ---
	messageHandler, err := handlers.NewMessageHandler(messageService, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Message Handler: %v", err)
	}

	// --- Rate Limiter (disabled when RATE_LIMIT_PER_MIN is 0) ---
	var limiter *ratelimit.MemoryRateLimiter
	if cfg.RateLimitPerMin > 0 {
		limiter = ratelimit.NewMemoryRateLimiter(ratelimit.PerMinuteConfig(cfg.RateLimitPerMin))
		defer limiter.Close()
	}

	// --- Router Setup ---
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	// --- Public Routes ---
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// --- API Routes (API key + rate limit collaborators) ---
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.NewAPIKeyMiddleware(cfg.APIKey))
	api.Use(middleware.RateLimitMiddleware(limiter))
	api.HandleFunc("/messages", messageHandler.CreateMessage).Methods("POST")
	api.HandleFunc("/messages/{session_id}", messageHandler.ListSessionMessages).Methods("GET")

	// --- Server Configuration ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	logger.Info("server starting",
		"port", cfg.ServerPort,
		"database", cfg.DatabasePath,
		"banned_words", len(cfg.BannedWords),
		"rate_limit_per_min", cfg.RateLimitPerMin,
		"auth_enabled", cfg.APIKey != "")

	// --- Start Server in Goroutine ---
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down server gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	logger.Info("server stopped")
}
