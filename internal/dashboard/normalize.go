package dashboard

// minorUnitDivisors maps asset types whose prices are quoted in a sub-unit
// to the divisor that brings them back to whole units. JPY prices arrive
// quoted per 100 yen. Extend this table for any future minor-unit type.
var minorUnitDivisors = map[string]float64{
	"JPY": 100,
}

// NormalizePrice converts a record's raw unit price into the canonical unit
// price used for valuation. Types without a divisor pass through unchanged.
// Pure; called on every view computation rather than cached.
func NormalizePrice(assetType string, buyPrice float64) float64 {
	if divisor, ok := minorUnitDivisors[assetType]; ok {
		return buyPrice / divisor
	}
	return buyPrice
}
