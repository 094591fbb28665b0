package calculation

import (
	"github.com/iwvelando/purchase-cost/pkg/mathutil"
)

// Retrograde walks the forward chain backwards from a target cost to the
// maximum invoice amount. The rates must be the ones the forward chain would
// apply; deductions are undone in reverse order with ReversePercentage.
func Retrograde(in RetrogradeInput) RetrogradeResult {
	var p RetrogradeParts
	p.TotalCost = resolveTotal(in)
	p.Own = in.Own

	sellerCharges := in.Packing + in.Freight

	p.Cash = mathutil.Round2(p.TotalCost - p.Own)
	p.Target = mathutil.Round2(mathutil.ReversePercentage(p.Cash, in.CashDiscount))
	p.Discounted = mathutil.Round2(p.Target - sellerCharges)
	p.AfterSpecial = mathutil.Round2(mathutil.ReversePercentage(p.Discounted, in.QuantityDiscount))
	p.AfterTrade = mathutil.Round2(mathutil.ReversePercentage(p.AfterSpecial, in.SpecialDiscount))
	p.Invoice = mathutil.Round2(mathutil.ReversePercentage(p.AfterTrade, in.TradeDiscount))

	p.DSkonto = mathutil.Round2(p.Target - p.Cash)
	p.DSeller = mathutil.Round2(-sellerCharges)
	p.DQuantity = mathutil.Round2(p.AfterSpecial - p.Discounted)
	p.DSpecial = mathutil.Round2(p.AfterTrade - p.AfterSpecial)
	p.DTrade = mathutil.Round2(p.Invoice - p.AfterTrade)

	p.PerUnit = mathutil.PerUnit(p.Invoice, in.Quantity)

	return RetrogradeResult{Parts: p}
}

// resolveTotal prefers an explicit positive total, taken as given, over unit
// cost × quantity rounded to cents.
func resolveTotal(in RetrogradeInput) float64 {
	if in.TargetTotal > 0 {
		return in.TargetTotal
	}
	if in.TargetUnit > 0 && in.Quantity > 0 {
		return mathutil.Round2(in.TargetUnit * in.Quantity)
	}
	return 0
}
