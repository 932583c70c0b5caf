package dashboard_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyunjkang/invest-manager/internal/dashboard"
	"github.com/hyunjkang/invest-manager/internal/testutil"
)

// TestClient_AgainstServer runs the dashboard client against the real API
// router backed by an in-memory database.
//
// WHY: the client and server each implement half of the CSRF double-submit
// dance and the JSON contract. Exercising them together catches drift that
// unit tests on either side cannot.
func TestClient_AgainstServer(t *testing.T) {
	ctx := context.Background()

	t.Run("create, list, delete round trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		server := testutil.StartTestServer(t, db)
		client := dashboard.NewClient(server.URL)

		// Create an asset through the client (CSRF cookie is fetched lazily).
		err := client.CreateAsset(ctx, dashboard.CreateInput{
			AssetType: "USD",
			Amount:    10,
			BuyPrice:  100.5,
			BuyDate:   "2025-02-01",
		})
		if err != nil {
			t.Fatalf("CreateAsset() returned unexpected error: %v", err)
		}

		raws, err := client.FetchAssets(ctx)
		if err != nil {
			t.Fatalf("FetchAssets() returned unexpected error: %v", err)
		}
		if len(raws) != 1 {
			t.Fatalf("Expected 1 asset, got %d", len(raws))
		}

		id := string(raws[0].ID)
		if id == "" {
			t.Fatalf("Expected server-assigned id")
		}

		// Delete it and verify the next load no longer contains the id.
		if err := client.DeleteAsset(ctx, id); err != nil {
			t.Fatalf("DeleteAsset() returned unexpected error: %v", err)
		}

		raws, err = client.FetchAssets(ctx)
		if err != nil {
			t.Fatalf("FetchAssets() after delete returned unexpected error: %v", err)
		}
		for _, raw := range raws {
			if string(raw.ID) == id {
				t.Errorf("Deleted id %s still present after reload", id)
			}
		}
	})

	t.Run("writes without a CSRF token are rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		server := testutil.StartTestServer(t, db)

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL+"/api/assets/", nil)
		if err != nil {
			t.Fatalf("Failed to build request: %v", err)
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("Expected status 403, got %d", resp.StatusCode)
		}
	})

	t.Run("coordinator end to end: delete then reload drops the row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		server := testutil.StartTestServer(t, db)

		keep := testutil.CreateAsset(t, db, "USD")
		drop := testutil.CreateAsset(t, db, "JPY")

		c := dashboard.NewCoordinator(dashboard.NewClient(server.URL))
		if err := c.LoadAll(ctx); err != nil {
			t.Fatalf("LoadAll() returned unexpected error: %v", err)
		}
		if c.Store().Len() != 2 {
			t.Fatalf("Expected 2 records, got %d", c.Store().Len())
		}

		if err := c.Remove(ctx, drop.ID); err != nil {
			t.Fatalf("Remove() returned unexpected error: %v", err)
		}

		records := c.Store().Records()
		if len(records) != 1 {
			t.Fatalf("Expected 1 record after delete, got %d", len(records))
		}
		if records[0].ID != keep.ID {
			t.Errorf("Expected %s to survive, got %s", keep.ID, records[0].ID)
		}

		if _, available := c.Summary(); !available {
			t.Errorf("Expected summary refreshed after mutation")
		}
	})
}

// TestClient_Failures tests client behavior against a misbehaving server.
//
// WHY: fetch and decode failures must come back as errors the coordinator can
// turn into the unavailable view state, not as empty data.
func TestClient_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("non-JSON asset payload is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>gateway error</html>"))
		}))
		defer server.Close()

		client := dashboard.NewClient(server.URL)

		if _, err := client.FetchAssets(ctx); err == nil {
			t.Errorf("Expected decode error for non-JSON payload")
		}
	})

	t.Run("5xx status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := dashboard.NewClient(server.URL)

		if _, err := client.FetchPortfolio(ctx); err == nil {
			t.Errorf("Expected error for 502 response")
		}
	})

	t.Run("unreachable server is an error", func(t *testing.T) {
		client := dashboard.NewClient("http://127.0.0.1:1")

		if _, err := client.FetchAssets(ctx); err == nil {
			t.Errorf("Expected error for unreachable server")
		}
	})
}
