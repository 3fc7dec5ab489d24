package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// PricingConfig holds every constant the pricing and estimate engines read.
type PricingConfig struct {
	FoodWastePct            decimal.Decimal
	LaborOverheadMultiplier decimal.Decimal
	PerPersonRounding       decimal.Decimal
	FixedRounding           decimal.Decimal
	MinFixedPrice           decimal.Decimal
	CategoryFloors          map[string]decimal.Decimal
	SalesTaxPct             decimal.Decimal
	GratuityPct             decimal.Decimal
	MinGuestCount           int
}

// DefaultPricingConfig returns the house pricing constants.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		FoodWastePct:            decimal.RequireFromString("0.10"),
		LaborOverheadMultiplier: decimal.RequireFromString("2.4"),
		PerPersonRounding:       decimal.NewFromInt(1),
		FixedRounding:           decimal.NewFromInt(5),
		MinFixedPrice:           decimal.NewFromInt(140),
		CategoryFloors: map[string]decimal.Decimal{
			"side":      decimal.NewFromInt(3),
			"salad":     decimal.NewFromInt(4),
			"app":       decimal.NewFromInt(4),
			"entree":    decimal.NewFromInt(8),
			"breakfast": decimal.NewFromInt(3),
		},
		SalesTaxPct:   decimal.RequireFromString("0.07"),
		GratuityPct:   decimal.RequireFromString("0.18"),
		MinGuestCount: 10,
	}
}

// CategoryFloor returns the minimum per-person price for a category, zero when
// the category has no floor.
func (c PricingConfig) CategoryFloor(category string) decimal.Decimal {
	if floor, ok := c.CategoryFloors[category]; ok {
		return floor
	}
	return decimal.Zero
}

// Validate reports values no kitchen would configure on purpose.
func (c PricingConfig) Validate() error {
	var errs []error
	check := func(name string, v decimal.Decimal) {
		if v.IsNegative() {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %s", name, v))
		}
	}
	check("food waste pct", c.FoodWastePct)
	check("labor overhead multiplier", c.LaborOverheadMultiplier)
	check("per-person rounding", c.PerPersonRounding)
	check("fixed rounding", c.FixedRounding)
	check("minimum fixed price", c.MinFixedPrice)
	check("sales tax pct", c.SalesTaxPct)
	check("gratuity pct", c.GratuityPct)

	categories := make([]string, 0, len(c.CategoryFloors))
	for category := range c.CategoryFloors {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		check("floor for "+category, c.CategoryFloors[category])
	}

	if c.MinGuestCount < 1 {
		errs = append(errs, fmt.Errorf("minimum guest count must be at least 1, got %d", c.MinGuestCount))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid pricing config: %w", err)
	}
	return nil
}
