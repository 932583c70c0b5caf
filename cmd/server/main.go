package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hyunjkang/invest-manager/internal/api"
	custommiddleware "github.com/hyunjkang/invest-manager/internal/api/middleware"
	"github.com/hyunjkang/invest-manager/internal/config"
	"github.com/hyunjkang/invest-manager/internal/database"
	"github.com/hyunjkang/invest-manager/internal/rates"
	"github.com/hyunjkang/invest-manager/internal/repository"
	"github.com/hyunjkang/invest-manager/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	assetRepo := repository.NewAssetRepository(db)
	rateRepo := repository.NewRateRepository(db)

	// Create services
	assetService := service.NewAssetService(assetRepo)
	portfolioService := service.NewPortfolioService(assetRepo, rateRepo)
	rateService := service.NewRateService(rateRepo, rates.NewClient(cfg.Rates.URL))

	// Keep exchange rates current in the background
	scheduler, err := rateService.StartScheduler(cfg.Rates.Schedule)
	if err != nil {
		log.Fatalf("Failed to start rate scheduler: %v", err)
	}
	defer scheduler.Stop()

	// CSRF protection
	csrf, err := custommiddleware.NewCSRF(cfg.CSRF.Key)
	if err != nil {
		log.Fatalf("Failed to initialize CSRF middleware: %v", err)
	}

	// Create router
	router := api.NewRouter(db, assetService, portfolioService, csrf, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
