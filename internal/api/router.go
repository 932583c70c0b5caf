package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hyunjkang/invest-manager/internal/api/handlers"
	custommiddleware "github.com/hyunjkang/invest-manager/internal/api/middleware"
	"github.com/hyunjkang/invest-manager/internal/config"
	"github.com/hyunjkang/invest-manager/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(db *sql.DB, assetService *service.AssetService, portfolioService *service.PortfolioService, csrf *custommiddleware.CSRF, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// CSRF middleware (issues csrftoken cookie, verifies unsafe methods)
	r.Use(csrf.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(db)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/assets", func(r chi.Router) {
			assetHandler := handlers.NewAssetHandler(assetService)
			r.Get("/", assetHandler.Assets)
			r.Post("/", assetHandler.CreateAsset)
			r.Delete("/{id}/delete/", assetHandler.DeleteAsset)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
			r.Get("/", portfolioHandler.Portfolio)
		})
	})

	return r
}
