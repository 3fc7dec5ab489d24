package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"privateevents/services"
)

func newCostCommand(a *app) *cobra.Command {
	var rawCost, pricingType, category string

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Print the sell price for a raw food cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cost := services.ParseAmount(rawCost)
			if !cost.Valid || cost.Decimal.IsNegative() {
				return fmt.Errorf("--cost: %q is not a valid cost", rawCost)
			}

			var item services.MenuItem
			switch services.PricingType(pricingType) {
			case services.PricingPerPerson:
				item = services.MenuItem{PricingType: services.PricingPerPerson, CogsPerPerson: cost, Category: category}
			case services.PricingFixed:
				item = services.MenuItem{PricingType: services.PricingFixed, CogsPerBatch: cost}
			default:
				return fmt.Errorf("--type: want %q or %q, got %q", services.PricingFixed, services.PricingPerPerson, pricingType)
			}

			raw := services.SellFromCost(cost.Decimal, item.PricingType, a.cfg)
			price, _ := services.DeriveItemPrice(item, a.cfg).SellPrice()

			a.printf("Raw cost: %s\n", services.FormatUSD(cost.Decimal))
			a.printf("Cost-plus price: %s\n", services.FormatUSD(raw))
			if !price.Equal(raw) {
				if item.PricingType == services.PricingFixed {
					a.printf("Minimum fixed price: %s\n", services.FormatUSD(a.cfg.MinFixedPrice))
				} else {
					a.printf("Category floor (%s): %s\n", category, services.FormatUSD(a.cfg.CategoryFloor(category)))
				}
			}
			a.printf("Sell price: %s\n", services.FormatUSD(price))
			return nil
		},
	}
	cmd.Flags().StringVar(&rawCost, "cost", "", "raw cost per person, or per batch for fixed items")
	cmd.Flags().StringVar(&pricingType, "type", string(services.PricingPerPerson), "pricing type: fixed or per_person")
	cmd.Flags().StringVar(&category, "category", "", "per-person category for the price floor")
	_ = cmd.MarkFlagRequired("cost")
	return cmd
}
