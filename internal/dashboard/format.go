package dashboard

import (
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatKRW renders a KRW amount with thousands grouping.
func FormatKRW(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return humanize.Commaf(v)
}

// FormatOptionalKRW renders a nullable KRW amount, using "-" for missing data.
func FormatOptionalKRW(v *float64) string {
	if v == nil {
		return "-"
	}
	return FormatKRW(*v)
}

// FormatUnitPrice renders a normalized unit price with 4 fractional digits.
func FormatUnitPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// FormatDate renders a calendar date without a time component.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
