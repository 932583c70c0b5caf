package request

// CreateAssetRequest represents the request body for registering an asset.
// Amount is an integer by dashboard convention; BuyPrice is in the asset's
// native quoting convention (JPY prices are per 100 yen).
type CreateAssetRequest struct {
	Name      string  `json:"name"`
	AssetType string  `json:"asset_type"`
	Amount    int64   `json:"amount"`
	BuyPrice  float64 `json:"buy_price"`
	BuyDate   string  `json:"buy_date"` // YYYY-MM-DD, defaults to today when empty
}
