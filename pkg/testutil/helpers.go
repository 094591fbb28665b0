// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/purchase-cost/internal/calculation"
)

// FindAmount finds a named amount in a calculation chain.
// Returns a pointer to the amount if found, nil otherwise.
func FindAmount(amounts []calculation.NamedAmount, name string) *calculation.NamedAmount {
	for i := range amounts {
		if amounts[i].Name == name {
			return &amounts[i]
		}
	}
	return nil
}
