// Package mathutil provides the rounding and percentage operators shared by
// both calculation directions.
package mathutil

import (
	"math"

	"github.com/iwvelando/purchase-cost/pkg/constants"
	"github.com/shopspring/decimal"
)

// Round rounds a value to the given number of decimals, half away from zero.
// The float is first taken at its shortest decimal representation so values
// such as 1.005 round the way they read. NaN and infinities round to 0.
func Round(val float64, places int32) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	return decimal.NewFromFloat(val).Round(places).InexactFloat64()
}

// Round2 rounds a value to two decimals, i.e. to represent real currency.
func Round2(val float64) float64 {
	return Round(val, constants.CurrencyPlaces)
}

// Round4 rounds a value to four decimals, used for per-unit amounts.
func Round4(val float64) float64 {
	return Round(val, constants.UnitPlaces)
}

// PercentageOf returns pct percent of base ("von Hundert"). No rounding is
// applied; callers round at each named stage.
func PercentageOf(base, pct float64) float64 {
	return base * (pct / constants.PercentageMultiplier)
}

// ReversePercentage recovers the base an amount had before pct percent of it
// was deducted ("im Hundert"). A rate of 100 or more cannot be inverted and
// yields 0.
func ReversePercentage(amountAfterDeduction, pct float64) float64 {
	factor := 1 - pct/constants.PercentageMultiplier
	if factor <= 0 {
		return 0
	}
	return amountAfterDeduction / factor
}

// PerUnit divides total by quantity at four decimals; a non-positive quantity yields 0.
func PerUnit(total, quantity float64) float64 {
	if quantity <= 0 {
		return 0
	}
	return Round4(total / quantity)
}

// IsZero checks if a currency value shows as zero at two decimals
func IsZero(val float64) bool {
	return math.Abs(val) < constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}
