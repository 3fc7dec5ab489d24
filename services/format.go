package services

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatUSD formats an amount the way the menu builder shows prices: whole
// dollars without cents ("$150"), anything else with two decimals ("$8.50").
func FormatUSD(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + FormatUSD(amount.Neg())
	}
	if amount.Round(2).Equal(amount.Truncate(0)) {
		return "$" + amount.StringFixed(0)
	}
	return "$" + amount.StringFixed(2)
}

// FormatPercent renders a fraction as a percentage label: 0.07 -> "7%", 0.085 -> "8.5%".
func FormatPercent(fraction decimal.Decimal) string {
	return fraction.Mul(hundred).Round(2).String() + "%"
}
