package validation

import (
	"fmt"

	"github.com/iwvelando/purchase-cost/pkg/constants"
)

// Rate returns a warning when a percentage rate lies outside [0, 100). A rate
// of 100 or more cannot be reversed, so a backward calculation through it
// collapses to 0. An empty string means the rate is fine.
func Rate(name string, pct float64) string {
	switch {
	case pct < 0:
		return fmt.Sprintf("%s rate %.2f%% is negative and acts as a surcharge", name, pct)
	case pct >= constants.PercentageMultiplier:
		return fmt.Sprintf("%s rate %.2f%% is 100%% or more; amounts reversed through it become 0", name, pct)
	}
	return ""
}

// Amount returns a warning when a currency amount is negative.
func Amount(name string, value float64) string {
	if value < 0 {
		return fmt.Sprintf("%s %.2f is negative", name, value)
	}
	return ""
}

// Quantity returns a warning when no per-unit value can be derived.
func Quantity(qty float64) string {
	switch {
	case qty < 0:
		return fmt.Sprintf("quantity %v is negative; per-unit value is 0", qty)
	case qty == 0:
		return "quantity is 0; per-unit value is 0"
	}
	return ""
}

// Collect drops empty warnings.
func Collect(warnings ...string) []string {
	var out []string
	for _, w := range warnings {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
