package fields

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected float64
	}{
		{"Nil", nil, 0},
		{"Float", 12.5, 12.5},
		{"Int", 7, 7},
		{"Int64", int64(-3), -3},
		{"JSON number", json.Number("99.95"), 99.95},
		{"Plain string", "1000", 1000},
		{"Padded string", "  42.5 ", 42.5},
		{"Decimal comma", "12,5", 12.5},
		{"Grouped decimal comma", "1.234,56", 1234.56},
		{"Negative decimal comma", "-0,75", -0.75},
		{"Two commas", "1,234,56", 0},
		{"Empty string", "", 0},
		{"Blank string", "   ", 0},
		{"Garbage", "abc", 0},
		{"Trailing garbage", "12abc", 0},
		{"NaN float", math.NaN(), 0},
		{"Infinite float", math.Inf(-1), 0},
		{"Bool", true, 0},
		{"Slice", []interface{}{1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Number(tt.input); math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Number(%#v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFieldsLookupIsCaseInsensitive(t *testing.T) {
	f := Fields{"dtrade": "10", "dSpecial": 5.0}

	if got := f.Float("dTrade"); got != 10 {
		t.Errorf("Float(dTrade) = %v, expected 10", got)
	}
	if got := f.Float("dSpecial"); got != 5 {
		t.Errorf("Float(dSpecial) = %v, expected 5", got)
	}
	if got := f.Float("missing"); got != 0 {
		t.Errorf("Float(missing) = %v, expected 0", got)
	}
}

func TestFieldsString(t *testing.T) {
	f := Fields{"currency": " $ ", "blank": "  ", "number": 3.0}

	if got := f.String("currency", "€"); got != "$" {
		t.Errorf("String(currency) = %q, expected %q", got, "$")
	}
	if got := f.String("blank", "€"); got != "€" {
		t.Errorf("String(blank) = %q, expected fallback", got)
	}
	if got := f.String("number", "€"); got != "€" {
		t.Errorf("String(number) = %q, expected fallback", got)
	}
	if got := f.String("absent", "€"); got != "€" {
		t.Errorf("String(absent) = %q, expected fallback", got)
	}
}
