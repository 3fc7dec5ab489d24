package services

import (
	"fmt"
	"strings"
)

// BuildSummary renders the plain-text breakdown staff receive with an enquiry.
// It reads only the snapshot it is given.
func BuildSummary(q Quote, cfg PricingConfig) string {
	est := q.Estimate
	lines := []string{
		"Menu selection (estimate only)",
		"Menu type: " + q.MenuLabel,
		fmt.Sprintf("Guests: %d", est.GuestCount),
		"",
		"Selections:",
	}

	if len(q.Groups) == 0 {
		lines = append(lines, "- None selected")
	}
	for _, group := range q.Groups {
		lines = append(lines, group.Title+":")
		for _, item := range group.Items {
			var priceParts []string
			if item.ResolvedPricingType() == PricingFixed {
				if item.FixedPrice.Valid {
					priceParts = append(priceParts, FormatUSD(item.FixedPrice.Decimal)+" each")
				}
			} else if item.PerPersonPrice.Valid && !item.PerPersonPrice.Decimal.IsZero() {
				priceParts = append(priceParts, FormatUSD(item.PerPersonPrice.Decimal)+"/guest")
			}
			lines = append(lines, "- "+item.Name+qtyTag(item.Qty)+priceLabel(priceParts))
		}
	}

	if len(q.Addons) > 0 {
		lines = append(lines, "", "Beverage add-ons:")
		for _, addon := range q.Addons {
			var priceParts []string
			if addon.FixedPrice.Valid {
				priceParts = append(priceParts, FormatUSD(addon.FixedPrice.Decimal)+" each")
			}
			if addon.PerPersonPrice.Valid {
				priceParts = append(priceParts, "~"+FormatUSD(addon.PerPersonPrice.Decimal)+"/guest")
			}
			lines = append(lines, "- "+addon.DisplayName()+qtyTag(addon.Qty)+priceLabel(priceParts))
		}
	}

	lines = append(lines, "", "Estimate breakdown:")
	if est.FixedSellTotal.IsPositive() {
		lines = append(lines, "Boards/Stations: "+FormatUSD(est.FixedSellTotal))
	}
	if est.PerPersonSellTotal.IsPositive() {
		lines = append(lines, fmt.Sprintf("Per-guest subtotal: ~%s x %d = %s",
			FormatUSD(est.PerPersonSellTotal), est.GuestCount, FormatUSD(est.PerGuestTotal())))
	}
	lines = append(lines,
		"Subtotal: "+FormatUSD(est.Subtotal),
		fmt.Sprintf("Sales tax (%s): %s", FormatPercent(cfg.SalesTaxPct), FormatUSD(est.TaxAmount)),
		fmt.Sprintf("Gratuity (%s): %s", FormatPercent(cfg.GratuityPct), FormatUSD(est.GratuityAmount)),
		"Estimated food total: ~"+FormatUSD(est.Total),
	)
	return strings.Join(lines, "\n")
}

func qtyTag(qty int) string {
	if qty > 1 {
		return fmt.Sprintf(" x%d", qty)
	}
	return ""
}

func priceLabel(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
