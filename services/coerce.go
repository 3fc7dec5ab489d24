package services

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// ParseString converts scalar JSON values to a trimmed string. Objects, arrays
// and nil give "".
func ParseString(v any) string {
	switch x := v.(type) {
	case nil, map[string]any, []any:
		return ""
	case json.Number:
		return x.String()
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// ParseAmount converts a JSON number or numeric string into an amount. Values
// that are not finite numbers are reported as absent.
func ParseAmount(v any) decimal.NullDecimal {
	switch x := v.(type) {
	case nil, bool:
		return decimal.NullDecimal{}
	case json.Number:
		return amountFromString(x.String())
	case string:
		return amountFromString(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(decimal.NewFromFloat(x))
	case decimal.Decimal:
		return decimal.NewNullDecimal(x)
	case decimal.NullDecimal:
		return x
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(f))
}

func amountFromString(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// ParseQuantity coerces raw input into a whole quantity. Fractions are floored;
// anything non-numeric or negative is 0.
func ParseQuantity(v any) int {
	amount := ParseAmount(v)
	if !amount.Valid || !amount.Decimal.IsPositive() {
		return 0
	}
	return int(amount.Decimal.Floor().IntPart())
}

// ParseGuestCount coerces raw form input to a guest count of at least min.
func ParseGuestCount(v any, min int) int {
	amount := ParseAmount(v)
	if !amount.Valid {
		return min
	}
	f, _ := amount.Decimal.Float64()
	return NormalizeGuestCount(f, min)
}

// NormalizeGuestCount floors n and clamps it to min. NaN and infinities give min.
func NormalizeGuestCount(n float64, min int) int {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return min
	}
	floored := math.Floor(n)
	if floored < float64(min) {
		return min
	}
	if floored > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(floored)
}
