// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/kmortenson/finance-dashboard/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// CeilCents rounds a value UP to the next cent. Payment sizing uses this so a
// loan is guaranteed to amortize within its stated term.
func CeilCents(val float64) float64 {
	return math.Ceil(val*constants.DecimalPrecision-1e-9) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Percentage returns what percent value is of total, or nil when the total is
// not positive. Callers render nil as an em dash instead of dividing by zero.
func Percentage(value, total float64) *float64 {
	if total <= 0 {
		return nil
	}
	pct := (value / total) * constants.PercentageMultiplier
	return &pct
}
