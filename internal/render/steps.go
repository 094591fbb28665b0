// Package render turns calculation results into ordered display steps. It
// only decides what is shown; the results it reads are always complete.
package render

import (
	"github.com/iwvelando/purchase-cost/internal/calculation"
	"github.com/iwvelando/purchase-cost/pkg/constants"
	"github.com/iwvelando/purchase-cost/pkg/format"
	"github.com/iwvelando/purchase-cost/pkg/mathutil"
)

// Hints shown next to percentage stages.
const (
	// HintPercentageOf marks a percentage taken of the base ("von Hundert").
	HintPercentageOf = "v.h."
	// HintReversePercentage marks a percentage recovered from the reduced amount ("im Hundert").
	HintReversePercentage = "i.h."
)

// Step is one row of a calculation diagram. A step carries an absolute
// value, a signed delta, or both.
type Step struct {
	Label     string   `json:"label"`
	Hint      string   `json:"hint,omitempty"`
	Value     *float64 `json:"value,omitempty"`
	Delta     *float64 `json:"delta,omitempty"`
	ValueText string   `json:"valueText,omitempty"`
	DeltaText string   `json:"deltaText,omitempty"`
}

// Diagram is the ordered, formatted view of one calculation.
type Diagram struct {
	Title        string  `json:"title"`
	Retro        bool    `json:"retro"`
	Currency     string  `json:"currency"`
	Steps        []Step  `json:"steps"`
	TotalLabel   string  `json:"totalLabel"`
	Total        float64 `json:"total"`
	TotalText    string  `json:"totalText"`
	PerUnitLabel string  `json:"perUnitLabel,omitempty"`
	PerUnit      float64 `json:"perUnit,omitempty"`
	PerUnitText  string  `json:"perUnitText,omitempty"`
}

type row struct {
	label string
	hint  string
	value *float64
	delta *float64
}

func value(label string, v float64) row {
	return row{label: label, value: &v}
}

func delta(label, hint string, d float64) row {
	return row{label: label, hint: hint, delta: &d}
}

// visible reports whether a row carries a non-zero value or a non-zero delta.
func (r row) visible() bool {
	return (r.value != nil && !mathutil.IsZero(*r.value)) || r.hasDelta()
}

func (r row) hasDelta() bool {
	return r.delta != nil && !mathutil.IsZero(*r.delta)
}

// Progressive lays out the forward chain.
func Progressive(res calculation.ProgressiveResult, f format.Formatter) Diagram {
	p := res.Parts
	d := Diagram{
		Title:        "Progressive calculation",
		TotalLabel:   "Total purchase price",
		Total:        p.TotalCost,
		PerUnitLabel: "Per unit",
		PerUnit:      p.UnitCost,
	}
	d.build(f, []row{
		value("Invoice amount", p.Invoice),
		delta("Trade discount", HintPercentageOf, -p.DiscTrade),
		delta("Special discount", HintPercentageOf, -p.DiscSpecial),
		delta("Quantity discount", HintPercentageOf, -p.DiscQty),
		value("Discounted price", p.Discounted),
		delta("Seller charges (packing + freight)", "", p.SellerCharges),
		value("Target price (net)", p.Target),
		delta("Cash discount", HintPercentageOf, -p.SkontoAmount),
		value("Cash price", p.Cash),
		delta("Own purchasing expenses", "", p.Own),
	})
	return d
}

// Retrograde lays out the backward chain.
func Retrograde(res calculation.RetrogradeResult, f format.Formatter) Diagram {
	p := res.Parts
	d := Diagram{
		Title:        "Retrograde calculation",
		Retro:        true,
		TotalLabel:   "Maximum invoice amount",
		Total:        p.Invoice,
		PerUnitLabel: "Maximum per unit",
		PerUnit:      p.PerUnit,
	}
	d.build(f, []row{
		value("Target total purchase price", p.TotalCost),
		delta("Own purchasing expenses", "", -p.Own),
		value("Cash price", p.Cash),
		delta("Cash discount", HintReversePercentage, p.DSkonto),
		value("Target price (net)", p.Target),
		delta("Seller charges (packing + freight)", "", p.DSeller),
		value("Discounted price", p.Discounted),
		delta("Quantity discount", HintReversePercentage, p.DQuantity),
		delta("Special discount", HintReversePercentage, p.DSpecial),
		delta("Trade discount", HintReversePercentage, p.DTrade),
	})
	return d
}

func (d *Diagram) build(f format.Formatter, rows []row) {
	d.Currency = f.Symbol()
	d.Steps = make([]Step, 0, len(rows))
	for _, r := range rows {
		if !r.visible() {
			continue
		}
		s := Step{Label: r.label, Hint: r.hint}
		if r.value != nil {
			s.Value = r.value
			s.ValueText = f.Amount(*r.value, constants.CurrencyPlaces)
		}
		if r.hasDelta() {
			s.Delta = r.delta
			s.DeltaText = f.Delta(*r.delta)
		}
		d.Steps = append(d.Steps, s)
	}
	d.TotalText = f.Amount(d.Total, constants.CurrencyPlaces)
	if d.PerUnit == 0 {
		d.PerUnitLabel = ""
		return
	}
	d.PerUnitText = f.Amount(d.PerUnit, constants.UnitPlaces)
}
