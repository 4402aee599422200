package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary amount to 2 decimal places, half away from zero.
// Persisted amounts go through here; intermediate arithmetic stays unrounded.
func Round2(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return rounded
}

// Equal2 reports whether two amounts agree at 2-decimal precision.
func Equal2(a, b float64) bool {
	return decimal.NewFromFloat(a).Round(2).Equal(decimal.NewFromFloat(b).Round(2))
}

// FormatINR formats an amount as an INR string for notifications.
func FormatINR(value float64) string {
	return fmt.Sprintf("₹%s", decimal.NewFromFloat(value).StringFixed(2))
}
