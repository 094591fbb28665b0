package calculation

import (
	"github.com/iwvelando/purchase-cost/pkg/mathutil"
)

// Progressive runs the forward chain from invoice amount to unit cost.
func Progressive(in ProgressiveInput) ProgressiveResult {
	var p ProgressiveParts
	p.Invoice = in.Invoice

	// Trade, special and quantity discounts, each on the previous result.
	p.DiscTrade = mathutil.Round2(mathutil.PercentageOf(in.Invoice, in.TradeDiscount))
	p.AfterTrade = mathutil.Round2(in.Invoice - p.DiscTrade)

	p.DiscSpecial = mathutil.Round2(mathutil.PercentageOf(p.AfterTrade, in.SpecialDiscount))
	p.AfterSpecial = mathutil.Round2(p.AfterTrade - p.DiscSpecial)

	p.DiscQty = mathutil.Round2(mathutil.PercentageOf(p.AfterSpecial, in.QuantityDiscount))
	p.Discounted = mathutil.Round2(p.AfterSpecial - p.DiscQty)

	p.SellerCharges = mathutil.Round2(in.Packing + in.Freight)
	p.Target = mathutil.Round2(p.Discounted + p.SellerCharges)

	p.SkontoAmount = mathutil.Round2(mathutil.PercentageOf(p.Target, in.CashDiscount))
	p.Cash = mathutil.Round2(p.Target - p.SkontoAmount)

	p.Own = mathutil.Round2(in.OwnFreight + in.OwnInsurance + in.OwnOther)
	p.TotalCost = mathutil.Round2(p.Cash + p.Own)
	p.UnitCost = mathutil.PerUnit(p.TotalCost, in.Quantity)

	return ProgressiveResult{Parts: p}
}
