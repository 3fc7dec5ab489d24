// Package services provides the private-event pricing engine, the menu builder
// estimate and the quote exports.
package services

import (
	"github.com/shopspring/decimal"
)

var half = decimal.RequireFromString("0.5")

// RoundTo rounds value half-up to the nearest multiple of increment. A zero
// increment returns value unchanged.
func RoundTo(value, increment decimal.Decimal) decimal.Decimal {
	if increment.IsZero() {
		return value
	}
	return value.Div(increment).Add(half).Floor().Mul(increment)
}

// SellFromCost marks a raw cost up for waste and labor/overhead and rounds it
// with the increment for the pricing type. Floors are not applied.
func SellFromCost(cost decimal.Decimal, pricingType PricingType, cfg PricingConfig) decimal.Decimal {
	withWaste := cost.Mul(decimal.NewFromInt(1).Add(cfg.FoodWastePct))
	sell := withWaste.Mul(cfg.LaborOverheadMultiplier)
	increment := cfg.PerPersonRounding
	if pricingType == PricingFixed {
		increment = cfg.FixedRounding
	}
	return RoundTo(sell, increment)
}

// DerivePrices returns a copy of menus in which every item with enough cost data
// carries a sell price. Prices already present are never recomputed, so the
// result is stable under a second pass.
func DerivePrices(menus []Menu, cfg PricingConfig) []Menu {
	out := cloneMenus(menus)
	for i := range out {
		for j := range out[i].Sections {
			items := out[i].Sections[j].Items
			for k := range items {
				items[k] = DeriveItemPrice(items[k], cfg)
			}
		}
	}
	return out
}

// DeriveItemPrice fills the missing sell price of a single item.
func DeriveItemPrice(item MenuItem, cfg PricingConfig) MenuItem {
	next := item
	pricingType := item.ResolvedPricingType()
	ingredientCost := item.IngredientCost()

	if pricingType == PricingPerPerson {
		if !next.PerPersonPrice.Valid && ingredientCost.Valid {
			sell := decimal.Max(SellFromCost(ingredientCost.Decimal, PricingPerPerson, cfg), cfg.CategoryFloor(item.Category))
			next.PerPersonPrice = decimal.NewNullDecimal(sell)
		}
		if !next.CogsPerPerson.Valid && ingredientCost.Valid {
			next.CogsPerPerson = ingredientCost
		}
	} else if !next.FixedPrice.Valid {
		if batch := item.BatchCost(); batch.Valid {
			sell := decimal.Max(SellFromCost(batch.Decimal, PricingFixed, cfg), cfg.MinFixedPrice)
			next.FixedPrice = decimal.NewNullDecimal(sell)
		}
	}

	next.PricingType = pricingType
	return next
}
