// Package fields is the parsing boundary between raw form or config values
// and the strictly numeric calculation inputs. Nothing in here fails: any
// value that cannot be read as a finite number becomes 0.
package fields

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Fields is a flat mapping of named raw values as submitted by a form, a
// JSON body or a configuration file.
type Fields map[string]interface{}

// Lookup returns the raw value stored under name. An exact key match wins;
// otherwise keys are compared case-insensitively, since configuration keys
// arrive lower-cased.
func (f Fields) Lookup(name string) (interface{}, bool) {
	if v, ok := f[name]; ok {
		return v, true
	}
	for key, v := range f {
		if strings.EqualFold(key, name) {
			return v, true
		}
	}
	return nil, false
}

// Float parses the named field, defaulting to 0.
func (f Fields) Float(name string) float64 {
	v, _ := f.Lookup(name)
	return Number(v)
}

// String returns the named field as trimmed text, or fallback when it is
// missing, blank or not a string.
func (f Fields) String(name, fallback string) string {
	v, ok := f.Lookup(name)
	if !ok {
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	if s = strings.TrimSpace(s); s == "" {
		return fallback
	}
	return s
}

// Number coerces a raw value to a finite float64, returning 0 for anything
// missing, non-numeric, NaN or infinite.
func Number(value interface{}) float64 {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint32:
		n = float64(v)
	case uint64:
		n = float64(v)
	case json.Number:
		n = ParseString(v.String())
	case string:
		n = ParseString(v)
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// ParseString reads a decimal number written with either a decimal point or
// a single decimal comma ("12,5", "1.234,56"). Dots in front of a decimal
// comma are taken as thousands separators.
func ParseString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	switch strings.Count(s, ",") {
	case 0:
	case 1:
		idx := strings.Index(s, ",")
		s = strings.ReplaceAll(s[:idx], ".", "") + "." + s[idx+1:]
	default:
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}
