package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const (
	csrfCookieName = "csrftoken"
	csrfHeaderName = "X-CSRFToken"
)

// Source is everything the dashboard needs from the remote API: the raw asset
// list, the two write operations, and the server-computed valuation.
type Source interface {
	FetchAssets(ctx context.Context) ([]RawAsset, error)
	CreateAsset(ctx context.Context, input CreateInput) error
	DeleteAsset(ctx context.Context, id string) error
	FetchPortfolio(ctx context.Context) (PortfolioSummary, error)
}

// CreateInput is the body of POST /api/assets/. Amount is coerced to an
// integer and BuyPrice to a float before submission; deeper validation is the
// server's responsibility.
type CreateInput struct {
	Name      string  `json:"name,omitempty"`
	AssetType string  `json:"asset_type"`
	Amount    int64   `json:"amount"`
	BuyPrice  float64 `json:"buy_price"`
	BuyDate   string  `json:"buy_date,omitempty"`
}

// Client talks to the invest-manager API server. It keeps the csrftoken
// cookie the server issues and echoes it in the X-CSRFToken header on writes,
// the same double-submit dance the browser dashboard did.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Source = (*Client)(nil)

// NewClient creates a client for the given base URL (e.g. "http://localhost:5001").
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}
}

// FetchAssets retrieves the raw asset list.
func (c *Client) FetchAssets(ctx context.Context) ([]RawAsset, error) {
	var raws []RawAsset
	if err := c.getJSON(ctx, "/api/assets/", &raws); err != nil {
		return nil, err
	}
	return raws, nil
}

// FetchPortfolio retrieves the server-computed valuation.
func (c *Client) FetchPortfolio(ctx context.Context) (PortfolioSummary, error) {
	var summary PortfolioSummary
	if err := c.getJSON(ctx, "/api/portfolio/", &summary); err != nil {
		return PortfolioSummary{}, err
	}
	return summary, nil
}

// CreateAsset submits a new asset. The response body is not inspected beyond
// the status code; the caller is expected to reload afterwards.
func (c *Client) CreateAsset(ctx context.Context, input CreateInput) error {
	body, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return c.write(ctx, http.MethodPost, "/api/assets/", body)
}

// DeleteAsset removes the asset with the given id.
func (c *Client) DeleteAsset(ctx context.Context, id string) error {
	return c.write(ctx, http.MethodDelete, fmt.Sprintf("/api/assets/%s/delete/", url.PathEscape(id)), nil)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, out)
}

func (c *Client) write(ctx context.Context, method, path string, body []byte) error {
	token, err := c.csrfToken(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(csrfHeaderName, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	return nil
}

// csrfToken returns the current csrftoken cookie value, priming the jar with
// a safe request when no token has been issued yet.
func (c *Client) csrfToken(ctx context.Context) (string, error) {
	if token, ok := c.cookieToken(); ok {
		return token, nil
	}

	// Any safe request makes the server set the cookie.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/system/health", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	token, ok := c.cookieToken()
	if !ok {
		return "", fmt.Errorf("server did not issue a %s cookie", csrfCookieName)
	}
	return token, nil
}

func (c *Client) cookieToken() (string, bool) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", false
	}

	for _, cookie := range c.httpClient.Jar.Cookies(u) {
		if cookie.Name == csrfCookieName && cookie.Value != "" {
			return cookie.Value, true
		}
	}
	return "", false
}
