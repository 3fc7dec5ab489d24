package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"privateevents/services"
)

// EnvPrefix prefixes every pricing override variable.
const EnvPrefix = "PRIVATE_EVENTS_"

// LoadEnvFile loads path into the process environment. A missing file is not
// an error; variables already set win.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// LoadPricingConfig starts from the defaults and applies PRIVATE_EVENTS_*
// overrides read through lookup (os.LookupEnv in production).
func LoadPricingConfig(lookup func(string) (string, bool)) (services.PricingConfig, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := services.DefaultPricingConfig()

	amounts := []struct {
		key    string
		target *decimal.Decimal
	}{
		{"FOOD_WASTE_PCT", &cfg.FoodWastePct},
		{"LABOR_OVERHEAD_MULTIPLIER", &cfg.LaborOverheadMultiplier},
		{"PER_PERSON_ROUNDING", &cfg.PerPersonRounding},
		{"FIXED_ROUNDING", &cfg.FixedRounding},
		{"MIN_FIXED_PRICE", &cfg.MinFixedPrice},
		{"SALES_TAX_PCT", &cfg.SalesTaxPct},
		{"GRATUITY_PCT", &cfg.GratuityPct},
	}
	for _, a := range amounts {
		raw, ok := lookup(EnvPrefix + a.key)
		if !ok || raw == "" {
			continue
		}
		amount := services.ParseAmount(raw)
		if !amount.Valid {
			return services.PricingConfig{}, fmt.Errorf("%s%s: %q is not a number", EnvPrefix, a.key, raw)
		}
		*a.target = amount.Decimal
	}

	if raw, ok := lookup(EnvPrefix + "MIN_GUEST_COUNT"); ok && raw != "" {
		n, err := cast.ToIntE(raw)
		if err != nil {
			return services.PricingConfig{}, fmt.Errorf("%sMIN_GUEST_COUNT: %w", EnvPrefix, err)
		}
		cfg.MinGuestCount = n
	}

	if err := cfg.Validate(); err != nil {
		return services.PricingConfig{}, err
	}
	return cfg, nil
}
