// Package calculation implements the purchase cost calculation
// (Bezugspreiskalkulation) in both directions: progressive, from an invoice
// amount down to the unit cost, and retrograde, from a target cost back up to
// the maximum acceptable invoice amount.
//
// Both directions are pure functions over plain value types. Every named
// intermediate amount is rounded to two decimals as soon as it is computed,
// so a chain is not equivalent to evaluating its formula in one expression.
package calculation

// NamedAmount is one stage of a calculation chain.
type NamedAmount struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ProgressiveInput holds the numeric inputs of the forward chain. Rates are
// percentages; the three discounts apply one after another to a shrinking base.
type ProgressiveInput struct {
	Quantity         float64
	Invoice          float64
	TradeDiscount    float64
	SpecialDiscount  float64
	QuantityDiscount float64
	Packing          float64
	Freight          float64
	CashDiscount     float64
	OwnFreight       float64
	OwnInsurance     float64
	OwnOther         float64
}

// ProgressiveParts carries every intermediate amount of the forward chain.
type ProgressiveParts struct {
	Invoice       float64 `json:"inv"`
	DiscTrade     float64 `json:"discTrade"`
	AfterTrade    float64 `json:"afterTrade"`
	DiscSpecial   float64 `json:"discSpecial"`
	AfterSpecial  float64 `json:"afterSpec"`
	DiscQty       float64 `json:"discQty"`
	Discounted    float64 `json:"discounted"`
	SellerCharges float64 `json:"sellerCharges"`
	Target        float64 `json:"target"`
	SkontoAmount  float64 `json:"skontoAmt"`
	Cash          float64 `json:"cash"`
	Own           float64 `json:"own"`
	TotalCost     float64 `json:"epTotal"`
	UnitCost      float64 `json:"epUnit"`
}

// ProgressiveResult is the output of Progressive.
type ProgressiveResult struct {
	Parts ProgressiveParts `json:"parts"`
}

// Amounts lists the parts in chain order.
func (p ProgressiveParts) Amounts() []NamedAmount {
	return []NamedAmount{
		{"inv", p.Invoice},
		{"discTrade", p.DiscTrade},
		{"afterTrade", p.AfterTrade},
		{"discSpecial", p.DiscSpecial},
		{"afterSpec", p.AfterSpecial},
		{"discQty", p.DiscQty},
		{"discounted", p.Discounted},
		{"sellerCharges", p.SellerCharges},
		{"target", p.Target},
		{"skontoAmt", p.SkontoAmount},
		{"cash", p.Cash},
		{"own", p.Own},
		{"epTotal", p.TotalCost},
		{"epUnit", p.UnitCost},
	}
}

// RetrogradeInput holds the numeric inputs of the backward chain. TargetTotal
// takes precedence; TargetUnit is only used when TargetTotal is not positive.
type RetrogradeInput struct {
	Quantity         float64
	TargetTotal      float64
	TargetUnit       float64
	Own              float64
	CashDiscount     float64
	Packing          float64
	Freight          float64
	TradeDiscount    float64
	SpecialDiscount  float64
	QuantityDiscount float64
}

// RetrogradeParts carries every intermediate amount of the backward chain.
// The D* fields are display deltas: what each stage added back. They never
// feed a later stage.
type RetrogradeParts struct {
	TotalCost    float64 `json:"epTotal"`
	Own          float64 `json:"own"`
	Cash         float64 `json:"cash"`
	Target       float64 `json:"target"`
	Discounted   float64 `json:"discounted"`
	AfterSpecial float64 `json:"afterSpec"`
	AfterTrade   float64 `json:"afterTrade"`
	Invoice      float64 `json:"invoice"`
	DSkonto      float64 `json:"dSkonto"`
	DSeller      float64 `json:"dSeller"`
	DQuantity    float64 `json:"dQtyIH"`
	DSpecial     float64 `json:"dSpecIH"`
	DTrade       float64 `json:"dTradeIH"`
	PerUnit      float64 `json:"perUnit"`
}

// RetrogradeResult is the output of Retrograde.
type RetrogradeResult struct {
	Parts RetrogradeParts `json:"parts"`
}

// Amounts lists the parts in chain order.
func (p RetrogradeParts) Amounts() []NamedAmount {
	return []NamedAmount{
		{"epTotal", p.TotalCost},
		{"own", p.Own},
		{"cash", p.Cash},
		{"target", p.Target},
		{"discounted", p.Discounted},
		{"afterSpec", p.AfterSpecial},
		{"afterTrade", p.AfterTrade},
		{"invoice", p.Invoice},
		{"dSkonto", p.DSkonto},
		{"dSeller", p.DSeller},
		{"dQtyIH", p.DQuantity},
		{"dSpecIH", p.DSpecial},
		{"dTradeIH", p.DTrade},
		{"perUnit", p.PerUnit},
	}
}
