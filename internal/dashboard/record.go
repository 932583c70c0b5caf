// Package dashboard implements the client-side view-model of the asset
// ledger: it pulls loosely-typed records from the API server, normalizes them
// into a canonical shape, and derives the filtered, sorted, paginated table
// plus totals that the terminal dashboard renders.
package dashboard

import (
	"strconv"
	"strings"
	"time"
)

// UnknownAssetType is substituted when a raw record carries no type tag.
const UnknownAssetType = "UNKNOWN"

// AssetRecord is the canonical representation of one holding. Every field is
// populated after decoding; no field is ever absent once a record is inside
// the store.
type AssetRecord struct {
	ID        string
	Name      string
	AssetType string
	Amount    float64
	BuyPrice  float64 // native quoting convention, not yet normalized
	BuyDate   time.Time
}

// RawAsset mirrors one element of the GET /api/assets/ response. The API has
// used two naming conventions over time, so each aliased field has both
// spellings; the primary name wins when both are present. Numeric fields
// tolerate JSON strings and ids tolerate JSON numbers.
type RawAsset struct {
	ID        FlexString  `json:"id"`
	Name      string      `json:"name"`
	AssetType string      `json:"asset_type"`
	AltType   string      `json:"type"`
	Amount    *FlexNumber `json:"amount"`
	BuyPrice  *FlexNumber `json:"buy_price"`
	AltPrice  *FlexNumber `json:"price"`
	BuyDate   string      `json:"buy_date"`
	AltDate   string      `json:"date"`
}

// Record converts the raw record to canonical form, applying the defaulting
// rules: missing type becomes UnknownAssetType, missing or unparseable
// numerics become 0, and a missing or unparseable date becomes now.
func (r RawAsset) Record(now time.Time) AssetRecord {
	assetType := r.AssetType
	if assetType == "" {
		assetType = r.AltType
	}
	if assetType == "" {
		assetType = UnknownAssetType
	}

	var amount float64
	if r.Amount != nil {
		amount = float64(*r.Amount)
	}

	var price float64
	switch {
	case r.BuyPrice != nil:
		price = float64(*r.BuyPrice)
	case r.AltPrice != nil:
		price = float64(*r.AltPrice)
	}

	date, ok := parseDate(r.BuyDate)
	if !ok {
		date, ok = parseDate(r.AltDate)
	}
	if !ok {
		date = now
	}

	return AssetRecord{
		ID:        string(r.ID),
		Name:      r.Name,
		AssetType: assetType,
		Amount:    amount,
		BuyPrice:  price,
		BuyDate:   date,
	}
}

func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FlexNumber decodes a JSON number or a numeric string. Unparseable input
// decodes to zero; it never fails.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}

	*n = FlexNumber(v)
	return nil
}

// FlexString decodes a JSON string or number into a string. The server
// assigns UUID ids today but the old backend used integer primary keys.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	v := strings.Trim(string(data), `"`)
	if v == "null" {
		v = ""
	}
	*s = FlexString(v)
	return nil
}
