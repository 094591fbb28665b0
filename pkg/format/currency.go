// Package format renders currency amounts with a symbol and locale-aware
// separators, e.g. "€ 1.234,56" for de-DE or "$ 1,234.56" for en-US.
package format

import (
	"math"
	"strings"

	"github.com/iwvelando/purchase-cost/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats amounts for one currency symbol and locale.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter returns a formatter for the given currency symbol and BCP 47
// locale tag. A blank symbol falls back to the default currency and an
// unparsable tag to English.
func NewFormatter(symbol, locale string) Formatter {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		symbol = constants.DefaultCurrency
	}
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.English
	}
	return Formatter{symbol: symbol, printer: message.NewPrinter(tag)}
}

// Symbol returns the currency symbol in use.
func (f Formatter) Symbol() string {
	return f.symbol
}

// Amount returns "<symbol> <value>" with exactly digits decimals.
func (f Formatter) Amount(value float64, digits int) string {
	return f.symbol + " " + f.Number(value, digits)
}

// Number formats value with exactly digits decimals and locale separators.
func (f Formatter) Number(value float64, digits int) string {
	if value == 0 {
		// avoid "-0,00"
		value = 0
	}
	return f.printer.Sprint(number.Decimal(value,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))
}

// Delta renders a signed change as "+ € 50,00" or "- € 100,00".
func (f Formatter) Delta(delta float64) string {
	sign := "+"
	if delta < 0 {
		sign = "-"
	}
	return sign + " " + f.Amount(math.Abs(delta), constants.CurrencyPlaces)
}
