package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyunjkang/invest-manager/internal/api/middleware"
)

func newCSRFHandler(t *testing.T) (*middleware.CSRF, http.Handler) {
	t.Helper()

	csrf, err := middleware.NewCSRF("")
	if err != nil {
		t.Fatalf("Failed to create CSRF middleware: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return csrf, csrf.Handler(next)
}

func csrfCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "csrftoken" {
			return cookie
		}
	}
	t.Fatalf("Expected a csrftoken cookie, got %v", w.Result().Cookies())
	return nil
}

// TestCSRF_SafeMethods tests token issuance on reads.
func TestCSRF_SafeMethods(t *testing.T) {
	t.Run("GET issues a csrftoken cookie and passes through", func(t *testing.T) {
		_, handler := newCSRFHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/assets/", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		cookie := csrfCookie(t, w)
		if cookie.Value == "" {
			t.Errorf("Expected non-empty token")
		}
		if cookie.Path != "/" {
			t.Errorf("Expected cookie path /, got %s", cookie.Path)
		}
	})

	t.Run("a valid existing cookie is not reissued", func(t *testing.T) {
		csrf, handler := newCSRFHandler(t)

		token, err := csrf.Token()
		if err != nil {
			t.Fatalf("Token() returned unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/assets/", nil)
		req.AddCookie(&http.Cookie{Name: "csrftoken", Value: token})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if len(w.Result().Cookies()) != 0 {
			t.Errorf("Expected no Set-Cookie for a valid token, got %v", w.Result().Cookies())
		}
	})

	t.Run("a foreign cookie is replaced", func(t *testing.T) {
		_, handler := newCSRFHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/assets/", nil)
		req.AddCookie(&http.Cookie{Name: "csrftoken", Value: "signed-by-someone-else"})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		cookie := csrfCookie(t, w)
		if cookie.Value == "signed-by-someone-else" {
			t.Errorf("Expected foreign token replaced")
		}
	})
}

// TestCSRF_UnsafeMethods tests the double-submit check on writes.
//
// WHY: a forged cross-site POST carries the cookie but cannot read it, so it
// cannot echo the value in the header. Cookie and header must match and the
// token must verify against the server key.
func TestCSRF_UnsafeMethods(t *testing.T) {
	t.Run("matching cookie and header pass", func(t *testing.T) {
		csrf, handler := newCSRFHandler(t)

		token, err := csrf.Token()
		if err != nil {
			t.Fatalf("Token() returned unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/api/assets/", nil)
		req.AddCookie(&http.Cookie{Name: "csrftoken", Value: token})
		req.Header.Set("X-CSRFToken", token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
	})

	t.Run("missing header is forbidden", func(t *testing.T) {
		csrf, handler := newCSRFHandler(t)

		token, err := csrf.Token()
		if err != nil {
			t.Fatalf("Token() returned unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/api/assets/", nil)
		req.AddCookie(&http.Cookie{Name: "csrftoken", Value: token})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("Expected status 403, got %d", w.Code)
		}
	})

	t.Run("missing cookie is forbidden", func(t *testing.T) {
		csrf, handler := newCSRFHandler(t)

		token, err := csrf.Token()
		if err != nil {
			t.Fatalf("Token() returned unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/api/assets/", nil)
		req.Header.Set("X-CSRFToken", token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("Expected status 403, got %d", w.Code)
		}
	})

	t.Run("header not matching cookie is forbidden", func(t *testing.T) {
		csrf, handler := newCSRFHandler(t)

		token, err := csrf.Token()
		if err != nil {
			t.Fatalf("Token() returned unexpected error: %v", err)
		}
		other, err := csrf.Token()
		if err != nil {
			t.Fatalf("Token() returned unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/api/assets/", nil)
		req.AddCookie(&http.Cookie{Name: "csrftoken", Value: token})
		req.Header.Set("X-CSRFToken", other)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("Expected status 403, got %d", w.Code)
		}
	})

	t.Run("token signed with another key is forbidden", func(t *testing.T) {
		otherCSRF, err := middleware.NewCSRF("")
		if err != nil {
			t.Fatalf("Failed to create second CSRF middleware: %v", err)
		}
		foreign, err := otherCSRF.Token()
		if err != nil {
			t.Fatalf("Token() returned unexpected error: %v", err)
		}

		_, handler := newCSRFHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/assets/", nil)
		req.AddCookie(&http.Cookie{Name: "csrftoken", Value: foreign})
		req.Header.Set("X-CSRFToken", foreign)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("Expected status 403, got %d", w.Code)
		}
	})
}
