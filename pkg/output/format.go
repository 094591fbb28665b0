// Package output provides utilities for writing rendered calculations.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/purchase-cost/internal/render"
)

// Report is the machine-readable form of one calculation: the complete set
// of named amounts plus the diagram built from them.
type Report struct {
	Parts    interface{}    `json:"parts"`
	Diagram  render.Diagram `json:"diagram"`
	Warnings []string       `json:"warnings,omitempty"`
}

const labelWidth = 44

// PrettyFormat writes a diagram as an aligned text listing.
func PrettyFormat(w io.Writer, d render.Diagram) error {
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s ---\n", d.Title)
	for _, s := range d.Steps {
		label := s.Label
		if s.Hint != "" {
			label += " [" + s.Hint + "]"
		}
		amount := s.ValueText
		if s.DeltaText != "" {
			if amount != "" {
				amount += " "
			}
			amount += s.DeltaText
		}
		fmt.Fprintf(&b, "  %-*s %s\n", labelWidth, label, amount)
	}
	fmt.Fprintf(&b, "  %s\n", strings.Repeat("_", labelWidth))
	fmt.Fprintf(&b, "  %-*s %s\n", labelWidth, d.TotalLabel, d.TotalText)
	if d.PerUnitText != "" {
		fmt.Fprintf(&b, "  %-*s %s\n", labelWidth, d.PerUnitLabel, d.PerUnitText)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// JSONFormat writes the report as indented JSON.
func JSONFormat(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
