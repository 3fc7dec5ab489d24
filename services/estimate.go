package services

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SelectedItem is a menu item with the quantity the guest picked.
type SelectedItem struct {
	MenuItem
	Section string
	Qty     int
}

// SelectedAddon is a beverage addon with its picked quantity.
type SelectedAddon struct {
	BeverageAddon
	Qty int
}

// EstimateInput is everything one estimate is computed from.
type EstimateInput struct {
	MenuID     string
	GuestCount int
	Items      []SelectedItem
	Addons     []SelectedAddon
}

// Estimate holds the computed quote for a set of selections.
type Estimate struct {
	FixedSellTotal     decimal.Decimal // sum of fixed price * qty, items and addons
	PerPersonSellTotal decimal.Decimal // per-guest rate, not yet multiplied by guests
	Subtotal           decimal.Decimal // FixedSellTotal + PerPersonSellTotal * GuestCount
	TaxAmount          decimal.Decimal
	GratuityAmount     decimal.Decimal
	Total              decimal.Decimal // Subtotal + TaxAmount + GratuityAmount
	FoodCostTotal      decimal.Decimal // kitchen cost, never shown to guests
	GuestCount         int
	HasSelections      bool
}

// PerGuestTotal is the per-person rate multiplied out over all guests.
func (e Estimate) PerGuestTotal() decimal.Decimal {
	return e.PerPersonSellTotal.Mul(decimal.NewFromInt(int64(e.GuestCount)))
}

// ComputeEstimate totals the selections. Items without a usable sell price count
// as zero and are reported on logger; nothing here fails.
func ComputeEstimate(in EstimateInput, cfg PricingConfig, logger zerolog.Logger) Estimate {
	guests := in.GuestCount
	if guests < 0 {
		guests = 0
	}
	guestsDec := decimal.NewFromInt(int64(guests))

	est := Estimate{GuestCount: guests}
	fixedFoodCost := decimal.Zero
	perPersonFoodCost := decimal.Zero

	for _, item := range in.Items {
		if item.Qty <= 0 {
			continue
		}
		est.HasSelections = true
		qty := decimal.NewFromInt(int64(item.Qty))

		sell, ok := item.SellPrice()
		if !ok {
			logger.Warn().
				Str("menu", in.MenuID).
				Str("section", item.Section).
				Str("item", item.Name).
				Msg("missing item pricing")
		}

		if item.ResolvedPricingType() == PricingFixed {
			est.FixedSellTotal = est.FixedSellTotal.Add(sell.Mul(qty))
			if batch := item.BatchCost(); batch.Valid {
				fixedFoodCost = fixedFoodCost.Add(batch.Decimal.Mul(qty))
			}
			continue
		}
		est.PerPersonSellTotal = est.PerPersonSellTotal.Add(sell.Mul(qty))
		if cost := item.IngredientCost(); cost.Valid {
			perPersonFoodCost = perPersonFoodCost.Add(cost.Decimal.Mul(qty).Mul(guestsDec))
		}
	}

	for _, addon := range in.Addons {
		if addon.Qty <= 0 {
			continue
		}
		est.HasSelections = true
		qty := decimal.NewFromInt(int64(addon.Qty))
		if addon.FixedPrice.Valid {
			est.FixedSellTotal = est.FixedSellTotal.Add(addon.FixedPrice.Decimal.Mul(qty))
		}
		if addon.PerPersonPrice.Valid {
			est.PerPersonSellTotal = est.PerPersonSellTotal.Add(addon.PerPersonPrice.Decimal.Mul(qty))
		}
		if !addon.FixedPrice.Valid && !addon.PerPersonPrice.Valid {
			logger.Warn().Str("addon", addon.Key()).Msg("missing addon pricing")
		}
	}

	est.Subtotal = est.FixedSellTotal.Add(est.PerPersonSellTotal.Mul(guestsDec))
	if est.HasSelections {
		est.TaxAmount = RoundTo(est.Subtotal.Mul(cfg.SalesTaxPct), decimal.NewFromInt(1))
		est.GratuityAmount = RoundTo(est.Subtotal.Mul(cfg.GratuityPct), decimal.NewFromInt(1))
	}
	est.Total = est.Subtotal.Add(est.TaxAmount).Add(est.GratuityAmount)
	est.FoodCostTotal = fixedFoodCost.Add(perPersonFoodCost)
	return est
}
