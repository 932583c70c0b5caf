package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches currency exchange rates from the open.er-api.com service.
// It wraps an HTTP client and converts the API's KRW-relative quotes into
// KRW-per-unit rates the valuation code works with.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a rates client for the given base URL
// (e.g. "https://open.er-api.com").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// QueryLatestKRW fetches the latest rates quoted against KRW and returns
// KRW-per-unit values keyed by currency code.
//
// The API reports how much of each currency one KRW buys, so the values are
// inverted before returning. Currencies with a zero quote are skipped.
func (c *Client) QueryLatestKRW(ctx context.Context) (map[string]float64, error) {
	url := fmt.Sprintf("%s/v6/latest/KRW", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, err
	}

	if response.Result != "success" {
		return nil, fmt.Errorf("rates API error: %s", response.ErrorType)
	}

	krwPerUnit := make(map[string]float64, len(response.Rates))
	for currency, perKRW := range response.Rates {
		if perKRW == 0 {
			continue
		}
		krwPerUnit[currency] = 1 / perKRW
	}

	return krwPerUnit, nil
}
