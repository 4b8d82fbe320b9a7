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

	"transcript-ai/internal/config"
	"transcript-ai/internal/handlers"
	"transcript-ai/internal/router"
	"transcript-ai/internal/services"
)

func main() {
	log.Println("🚀 Starting YouTube Transcript AI...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(context.Background(), cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)

	// ──── Step 3: Initialize Services ────
	youtubeService := services.NewYouTubeService(cfg.TranscriptLanguages)
	summarizer := services.NewSummarizer(youtubeService, geminiService)
	log.Printf("✓ Transcript service ready (languages: %v)", cfg.TranscriptLanguages)

	// ──── Initialize Handlers ────
	summaryHandler := handlers.NewSummaryHandler(summarizer, time.Duration(cfg.RequestTimeoutSeconds)*time.Second)
	videoHandler := handlers.NewVideoHandler(youtubeService)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(summaryHandler, videoHandler, cfg.AllowedOrigin)

	// Generation can take well over a minute for long transcripts.
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ YouTube Transcript AI ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
