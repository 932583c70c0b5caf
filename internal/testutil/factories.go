package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hyunjkang/invest-manager/internal/model"
)

// AssetBuilder provides a fluent interface for creating test assets.
//
// Example usage:
//
//	// Simple creation with defaults
//	asset := testutil.NewAsset().Build(t, db)
//
//	// Customized asset
//	asset := testutil.NewAsset().
//	    WithType("JPY").
//	    WithAmount(1000).
//	    WithBuyPrice(15000).
//	    Build(t, db)
type AssetBuilder struct {
	ID        string
	Name      string
	AssetType string
	Amount    float64
	BuyPrice  float64
	BuyDate   time.Time
}

// NewAsset creates an AssetBuilder with sensible defaults.
func NewAsset() *AssetBuilder {
	return &AssetBuilder{
		ID:        MakeID(),
		Name:      "Test Asset",
		AssetType: "USD",
		Amount:    10,
		BuyPrice:  1300,
		BuyDate:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

// WithID sets a custom ID.
func (b *AssetBuilder) WithID(id string) *AssetBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *AssetBuilder) WithName(name string) *AssetBuilder {
	b.Name = name
	return b
}

// WithType sets the asset type.
func (b *AssetBuilder) WithType(assetType string) *AssetBuilder {
	b.AssetType = assetType
	return b
}

// WithAmount sets the quantity held.
func (b *AssetBuilder) WithAmount(amount float64) *AssetBuilder {
	b.Amount = amount
	return b
}

// WithBuyPrice sets the raw purchase price.
func (b *AssetBuilder) WithBuyPrice(price float64) *AssetBuilder {
	b.BuyPrice = price
	return b
}

// WithBuyDate sets the purchase date.
func (b *AssetBuilder) WithBuyDate(date time.Time) *AssetBuilder {
	b.BuyDate = date
	return b
}

// Build creates the asset in the database and returns it.
func (b *AssetBuilder) Build(t *testing.T, db *sql.DB) model.Asset {
	t.Helper()

	query := `
		INSERT INTO asset (id, name, asset_type, amount, buy_price, buy_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.AssetType, b.Amount, b.BuyPrice, b.BuyDate.Format("2006-01-02"))
	if err != nil {
		t.Fatalf("Failed to create test asset: %v", err)
	}

	return model.Asset{
		ID:        b.ID,
		Name:      b.Name,
		AssetType: b.AssetType,
		Amount:    b.Amount,
		BuyPrice:  b.BuyPrice,
		BuyDate:   b.BuyDate,
	}
}

// Convenience functions

// CreateAsset creates an asset of the given type with default values.
//
// Example usage:
//
//	asset := testutil.CreateAsset(t, db, "USD")
func CreateAsset(t *testing.T, db *sql.DB, assetType string) model.Asset {
	t.Helper()
	return NewAsset().WithType(assetType).WithName(assetType + " holding").Build(t, db)
}

// InsertRate stores an exchange rate for today.
func InsertRate(t *testing.T, db *sql.DB, currency string, rate float64) {
	t.Helper()

	query := `
		INSERT INTO exchange_rate (id, currency, rate, date)
		VALUES (?, ?, ?, DATE('now'))
		ON CONFLICT (currency, date) DO UPDATE SET rate = excluded.rate
	`

	if _, err := db.Exec(query, uuid.New().String(), currency, rate); err != nil {
		t.Fatalf("Failed to insert test exchange rate: %v", err)
	}
}
