package dashboard

// PortfolioAsset is the server-computed valuation of one asset type.
// Nil numerics mean the server had no data (for instance no exchange rate);
// that is rendered as unavailable, never as zero.
type PortfolioAsset struct {
	Type            string   `json:"type"`
	Amount          *float64 `json:"amount"`
	ExchangeRate    *float64 `json:"exchange_rate"`
	CurrentValueKRW *float64 `json:"current_value_krw"`
}

// PortfolioSummary mirrors the GET /api/portfolio/ response verbatim.
// Nothing in it is recomputed locally.
type PortfolioSummary struct {
	Assets   []PortfolioAsset `json:"assets"`
	TotalKRW *float64         `json:"total_krw"`
}

// HasAssets reports whether the server returned any positions. An absent or
// empty list is the explicit no-assets state, distinct from positions that
// merely value to zero.
func (s PortfolioSummary) HasAssets() bool {
	return len(s.Assets) > 0
}
