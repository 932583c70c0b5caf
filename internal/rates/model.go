package rates

// Response represents the raw JSON response from the open.er-api.com
// latest-rates endpoint. Rates are quoted per one unit of the base currency,
// so with base KRW each value is the amount of that currency one KRW buys.
type Response struct {
	Result    string             `json:"result"`
	ErrorType string             `json:"error-type"`
	BaseCode  string             `json:"base_code"`
	Rates     map[string]float64 `json:"rates"`
}
