package testutil

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/hyunjkang/invest-manager/internal/api"
	custommiddleware "github.com/hyunjkang/invest-manager/internal/api/middleware"
	"github.com/hyunjkang/invest-manager/internal/config"
	"github.com/hyunjkang/invest-manager/internal/repository"
	"github.com/hyunjkang/invest-manager/internal/service"
)

// NewTestAssetService creates an AssetService backed by the given test database.
func NewTestAssetService(t *testing.T, db *sql.DB) *service.AssetService {
	t.Helper()
	return service.NewAssetService(repository.NewAssetRepository(db))
}

// NewTestPortfolioService creates a PortfolioService backed by the given test database.
func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()
	return service.NewPortfolioService(
		repository.NewAssetRepository(db),
		repository.NewRateRepository(db),
	)
}

// NewTestRouter builds the full production router over the given test
// database, with CSRF protection enabled exactly as in production.
func NewTestRouter(t *testing.T, db *sql.DB) http.Handler {
	t.Helper()

	csrf, err := custommiddleware.NewCSRF("")
	if err != nil {
		t.Fatalf("Failed to create CSRF middleware: %v", err)
	}

	cfg := &config.Config{}
	cfg.CORS.AllowedOrigins = []string{"http://localhost"}

	return api.NewRouter(db, NewTestAssetService(t, db), NewTestPortfolioService(t, db), csrf, cfg)
}

// StartTestServer runs the full router on an httptest server, giving client
// tests a real endpoint to talk to. The server is shut down with the test.
func StartTestServer(t *testing.T, db *sql.DB) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(NewTestRouter(t, db))
	t.Cleanup(server.Close)
	return server
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}
