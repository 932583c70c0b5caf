package model

import "time"

// Asset represents a single holding as stored in the database.
// Amount and BuyPrice are kept in the asset's native quoting convention;
// conversion to the display currency happens at valuation time.
type Asset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AssetType string    `json:"asset_type"`
	Amount    float64   `json:"amount"`
	BuyPrice  float64   `json:"buy_price"`
	BuyDate   time.Time `json:"buy_date"`
}

// ExchangeRate represents the KRW value of one unit of a currency or
// commodity on a given date.
type ExchangeRate struct {
	ID       string    `json:"id"`
	Currency string    `json:"currency"`
	Rate     float64   `json:"rate"` // KRW per unit
	Date     time.Time `json:"date"`
}
