package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shrusti-bit/AI-Study-Hub/internal/config"
	"github.com/shrusti-bit/AI-Study-Hub/internal/database"
	"github.com/shrusti-bit/AI-Study-Hub/internal/handlers"
	"github.com/shrusti-bit/AI-Study-Hub/internal/middleware"
	"github.com/shrusti-bit/AI-Study-Hub/internal/router"
	"github.com/shrusti-bit/AI-Study-Hub/internal/services"
	"github.com/shrusti-bit/AI-Study-Hub/internal/store"
	"github.com/shrusti-bit/AI-Study-Hub/internal/websocket"
)

func main() {
	log.Println("🚀 Starting AI Study Hub...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Redis Clients ────
	redisClients, err := database.NewRedisClients(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClients.Close()
	log.Println("✓ Redis connected")

	// ──── Step 3: Initialize Persistence ────
	fileStore, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("✗ Data directory initialization failed: %v", err)
	}
	sessions := store.NewSessions(fileStore)
	log.Printf("✓ File store ready (%s)", cfg.DataDir)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("✗ Upload directory initialization failed: %v", err)
	}

	// ──── Initialize Services ────
	sessionAuth := middleware.NewSessionAuth(cfg.SessionSecret)
	aiService := services.NewAIService()
	scraperService := services.NewScraperService()
	pdfService := services.NewPDFService()

	// ──── Initialize Handlers ────
	authHandler := handlers.NewAuthHandler(sessions, aiService)
	scrapeHandler := handlers.NewScrapeHandler(sessions, scraperService, redisClients.Publisher)
	pdfHandler := handlers.NewPDFHandler(sessions, pdfService, redisClients.Publisher, cfg.UploadDir, cfg.MaxUploadMB)
	generateHandler := handlers.NewGenerateHandler(sessions, aiService, redisClients.Publisher)
	chatHandler := handlers.NewChatHandler(sessions, aiService)
	noteHandler := handlers.NewNoteHandler(sessions)
	eventHandler := handlers.NewEventHandler(sessions)
	groupHandler := handlers.NewGroupHandler(sessions)
	dataHandler := handlers.NewDataHandler(sessions)

	// ──── Step 4: Start WebSocket Hub ────
	wsHub := websocket.NewHub(redisClients.PubSub, sessionAuth)
	log.Println("✓ WebSocket hub started")

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		sessionAuth,
		authHandler,
		scrapeHandler,
		pdfHandler,
		generateHandler,
		chatHandler,
		noteHandler,
		eventHandler,
		groupHandler,
		dataHandler,
		wsHub,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		if backup, err := fileStore.Backup(); err == nil {
			log.Printf("✓ Hub data backed up to %s", backup)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ AI Study Hub ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
