package model

// PortfolioPosition represents the server-computed valuation of all holdings
// of one asset type. Rate and CurrentValueKRW are nil when no exchange rate is
// known for the type: the dashboard must be able to tell "no data" apart from
// a zero value.
type PortfolioPosition struct {
	Type            string   `json:"type"`
	Amount          *float64 `json:"amount"`
	ExchangeRate    *float64 `json:"exchange_rate"`
	CurrentValueKRW *float64 `json:"current_value_krw"`
}

// PortfolioValuation represents the full portfolio valuation in KRW.
// TotalKRW sums the positions with a known rate.
type PortfolioValuation struct {
	Positions []PortfolioPosition
	TotalKRW  *float64
}
