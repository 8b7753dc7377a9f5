// BetterRest API
//
// REST API that estimates the ideal bedtime from a wake time, a sleep goal and coffee intake.
//
//	@title			BetterRest API
//	@version		1.0
//	@description	Estimate the ideal bedtime from wake time, sleep goal and coffee intake.
//
//	@BasePath	/v1
//
//	@tag.name			bedtime
//	@tag.description	Bedtime estimation endpoints
//
//	@tag.name			forms
//	@tag.description	Stateful bedtime form endpoints
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/better-rest/internal/api"
	"github.com/blaisecz/better-rest/internal/api/handler"
	"github.com/blaisecz/better-rest/internal/config"
	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/blaisecz/better-rest/internal/langfuse"
	"github.com/blaisecz/better-rest/internal/models"
	"github.com/blaisecz/better-rest/internal/repository"
	"github.com/blaisecz/better-rest/internal/seed"
	"github.com/blaisecz/better-rest/internal/service"
	"github.com/blaisecz/better-rest/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg := config.Load()

	// Tracing (no-op without Langfuse credentials)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "better-rest-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(flushCtx); err != nil {
			log.Printf("Failed to flush traces: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.BedtimeForm{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Sleep model and estimator
	modelProvider := models.NewProvider(cfg)
	if cfg.ModelBackend == config.ModelBackendOpenAI && cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OpenAI API key not configured, every estimate will return the failure message")
	}
	bedtimeService := service.NewBedtimeService(modelProvider, service.LayoutFor(cfg.TimeFormat))

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(ctx, db, bedtimeService); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories and services
	formRepo := repository.NewFormRepository(db)
	formService := service.NewFormService(formRepo, bedtimeService)

	langfuseClient := langfuse.NewClient(models.LangfuseConfig(cfg))
	defer langfuseClient.Close()

	// Initialize handlers
	bedtimeHandler := handler.NewBedtimeHandler(bedtimeService, langfuseClient)
	formHandler := handler.NewFormHandler(formService)

	// Setup router
	router := api.NewRouter(bedtimeHandler, formHandler)

	// Start server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
}
