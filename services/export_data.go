package services

import (
	"github.com/shopspring/decimal"
)

// Pricing basis labels used in quote rows.
const (
	BasisEach     = "each"
	BasisPerGuest = "per guest"
)

// QuoteRow is a single line of an exported quote.
type QuoteRow struct {
	Section     string
	Description string
	Qty         int
	UnitPrice   decimal.Decimal
	Basis       string // BasisEach or BasisPerGuest
	LineTotal   decimal.Decimal
	Priced      bool
}

// QuoteExport holds everything the xlsx and pdf quotes render. Kitchen cost is
// never exported.
type QuoteExport struct {
	Title           string
	ReferenceNumber string
	CreatedDate     string
	MenuLabel       string
	GuestCount      int
	Rows            []QuoteRow
	FixedTotal      decimal.Decimal
	PerGuestRate    decimal.Decimal
	PerGuestTotal   decimal.Decimal
	Subtotal        decimal.Decimal
	TaxLabel        string
	TaxAmount       decimal.Decimal
	GratuityLabel   string
	GratuityAmount  decimal.Decimal
	Total           decimal.Decimal
}

// ExportData builds the quote export from the current snapshot.
func (b *Builder) ExportData(reference, date string) QuoteExport {
	return BuildQuoteExport(b.quote, b.cfg, reference, date)
}

// BuildQuoteExport converts a snapshot into export rows and totals.
func BuildQuoteExport(q Quote, cfg PricingConfig, reference, date string) QuoteExport {
	est := q.Estimate
	guests := decimal.NewFromInt(int64(est.GuestCount))
	data := QuoteExport{
		Title:           "Private Event Estimate",
		ReferenceNumber: reference,
		CreatedDate:     date,
		MenuLabel:       q.MenuLabel,
		GuestCount:      est.GuestCount,
		FixedTotal:      est.FixedSellTotal,
		PerGuestRate:    est.PerPersonSellTotal,
		PerGuestTotal:   est.PerGuestTotal(),
		Subtotal:        est.Subtotal,
		TaxLabel:        "Sales tax (" + FormatPercent(cfg.SalesTaxPct) + ")",
		TaxAmount:       est.TaxAmount,
		GratuityLabel:   "Gratuity (" + FormatPercent(cfg.GratuityPct) + ")",
		GratuityAmount:  est.GratuityAmount,
		Total:           est.Total,
	}

	for _, group := range q.Groups {
		for _, item := range group.Items {
			qty := decimal.NewFromInt(int64(item.Qty))
			price, ok := item.SellPrice()
			row := QuoteRow{
				Section:     group.Title,
				Description: item.Name,
				Qty:         item.Qty,
				UnitPrice:   price,
				Priced:      ok,
			}
			if item.ResolvedPricingType() == PricingFixed {
				row.Basis = BasisEach
				row.LineTotal = price.Mul(qty)
			} else {
				row.Basis = BasisPerGuest
				row.LineTotal = price.Mul(qty).Mul(guests)
			}
			data.Rows = append(data.Rows, row)
		}
	}

	for _, addon := range q.Addons {
		qty := decimal.NewFromInt(int64(addon.Qty))
		if addon.FixedPrice.Valid {
			data.Rows = append(data.Rows, QuoteRow{
				Section:     "Beverage add-ons",
				Description: addon.DisplayName(),
				Qty:         addon.Qty,
				UnitPrice:   addon.FixedPrice.Decimal,
				Basis:       BasisEach,
				LineTotal:   addon.FixedPrice.Decimal.Mul(qty),
				Priced:      true,
			})
		}
		if addon.PerPersonPrice.Valid {
			data.Rows = append(data.Rows, QuoteRow{
				Section:     "Beverage add-ons",
				Description: addon.DisplayName(),
				Qty:         addon.Qty,
				UnitPrice:   addon.PerPersonPrice.Decimal,
				Basis:       BasisPerGuest,
				LineTotal:   addon.PerPersonPrice.Decimal.Mul(qty).Mul(guests),
				Priced:      true,
			})
		}
		if !addon.FixedPrice.Valid && !addon.PerPersonPrice.Valid {
			data.Rows = append(data.Rows, QuoteRow{
				Section:     "Beverage add-ons",
				Description: addon.DisplayName(),
				Qty:         addon.Qty,
				Basis:       BasisEach,
			})
		}
	}
	return data
}
