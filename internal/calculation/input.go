package calculation

import (
	"github.com/iwvelando/purchase-cost/pkg/fields"
	"github.com/iwvelando/purchase-cost/pkg/validation"
)

// Field names used by the calculation forms.
const (
	FieldQuantity         = "qty"
	FieldInvoice          = "invoice"
	FieldTradeDiscount    = "dTrade"
	FieldSpecialDiscount  = "dSpecial"
	FieldQuantityDiscount = "dQty"
	FieldPacking          = "fakPack"
	FieldFreight          = "fakFre"
	FieldCashDiscount     = "skonto"
	FieldOwnFreight       = "ownFreight"
	FieldOwnInsurance     = "ownIns"
	FieldOwnOther         = "ownOther"
	FieldTargetTotal      = "epTotal"
	FieldTargetUnit       = "epUnit"
	FieldOwn              = "own"
	FieldCurrency         = "currency"
)

// ProgressiveInputFromFields parses raw form values; anything unreadable is 0.
func ProgressiveInputFromFields(f fields.Fields) ProgressiveInput {
	return ProgressiveInput{
		Quantity:         f.Float(FieldQuantity),
		Invoice:          f.Float(FieldInvoice),
		TradeDiscount:    f.Float(FieldTradeDiscount),
		SpecialDiscount:  f.Float(FieldSpecialDiscount),
		QuantityDiscount: f.Float(FieldQuantityDiscount),
		Packing:          f.Float(FieldPacking),
		Freight:          f.Float(FieldFreight),
		CashDiscount:     f.Float(FieldCashDiscount),
		OwnFreight:       f.Float(FieldOwnFreight),
		OwnInsurance:     f.Float(FieldOwnInsurance),
		OwnOther:         f.Float(FieldOwnOther),
	}
}

// RetrogradeInputFromFields parses raw form values; anything unreadable is 0.
func RetrogradeInputFromFields(f fields.Fields) RetrogradeInput {
	return RetrogradeInput{
		Quantity:         f.Float(FieldQuantity),
		TargetTotal:      f.Float(FieldTargetTotal),
		TargetUnit:       f.Float(FieldTargetUnit),
		Own:              f.Float(FieldOwn),
		CashDiscount:     f.Float(FieldCashDiscount),
		Packing:          f.Float(FieldPacking),
		Freight:          f.Float(FieldFreight),
		TradeDiscount:    f.Float(FieldTradeDiscount),
		SpecialDiscount:  f.Float(FieldSpecialDiscount),
		QuantityDiscount: f.Float(FieldQuantityDiscount),
	}
}

// Warnings reports inputs the caller may want to reject. The calculation
// itself accepts them.
func (in ProgressiveInput) Warnings() []string {
	return validation.Collect(
		validation.Quantity(in.Quantity),
		validation.Amount("invoice amount", in.Invoice),
		validation.Rate("trade discount", in.TradeDiscount),
		validation.Rate("special discount", in.SpecialDiscount),
		validation.Rate("quantity discount", in.QuantityDiscount),
		validation.Rate("cash discount", in.CashDiscount),
	)
}

// Warnings reports inputs the caller may want to reject. The calculation
// itself accepts them.
func (in RetrogradeInput) Warnings() []string {
	var target string
	if in.TargetTotal <= 0 && (in.TargetUnit <= 0 || in.Quantity <= 0) {
		target = "neither a target total nor a target unit cost with quantity was given"
	}
	return validation.Collect(
		target,
		validation.Quantity(in.Quantity),
		validation.Rate("cash discount", in.CashDiscount),
		validation.Rate("quantity discount", in.QuantityDiscount),
		validation.Rate("special discount", in.SpecialDiscount),
		validation.Rate("trade discount", in.TradeDiscount),
	)
}
