package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/hyunjkang/invest-manager/internal/api/response"
)

const (
	csrfCookieName = "csrftoken"
	csrfHeaderName = "X-CSRFToken"
	csrfTokenTTL   = 12 * time.Hour
)

// CSRF implements double-submit cookie CSRF protection. Safe requests get a
// fernet-signed token in the csrftoken cookie; unsafe requests must echo that
// cookie's value in the X-CSRFToken header, and the token must verify against
// the server key within its TTL.
type CSRF struct {
	keys []*fernet.Key
}

// NewCSRF creates the middleware from a base64 fernet key. An empty key makes
// the server generate a random one, invalidating tokens across restarts.
func NewCSRF(encodedKey string) (*CSRF, error) {
	if encodedKey == "" {
		key := &fernet.Key{}
		if err := key.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate CSRF key: %w", err)
		}
		return &CSRF{keys: []*fernet.Key{key}}, nil
	}

	keys, err := fernet.DecodeKeys(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode CSRF key: %w", err)
	}
	return &CSRF{keys: keys}, nil
}

// Handler applies CSRF issuance and verification around the next handler.
func (c *CSRF) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.ensureCookie(w, r)
		default:
			if !c.verify(r) {
				response.RespondError(w, http.StatusForbidden, "CSRF verification failed", nil)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// Token issues a fresh signed token. Exposed for clients that talk to the API
// without first performing a safe request.
func (c *CSRF) Token() (string, error) {
	tok, err := fernet.EncryptAndSign([]byte("csrf"), c.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to sign CSRF token: %w", err)
	}
	return string(tok), nil
}

func (c *CSRF) ensureCookie(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(csrfCookieName); err == nil {
		if fernet.VerifyAndDecrypt([]byte(cookie.Value), csrfTokenTTL, c.keys) != nil {
			return
		}
		// Expired or foreign token, reissue below.
	}

	token, err := c.Token()
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *CSRF) verify(r *http.Request) bool {
	cookie, err := r.Cookie(csrfCookieName)
	if err != nil {
		return false
	}

	header := r.Header.Get(csrfHeaderName)
	if header == "" || header != cookie.Value {
		return false
	}

	return fernet.VerifyAndDecrypt([]byte(header), csrfTokenTTL, c.keys) != nil
}
