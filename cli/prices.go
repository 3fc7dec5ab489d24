package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"privateevents/services"
)

const maxMissingListed = 10

func newPricesCommand(a *app) *cobra.Command {
	var dataFile string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Derive sell prices for a catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadPriced(dataFile)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(doc); err != nil {
					return fmt.Errorf("encode catalog: %w", err)
				}
			} else if err := writePriceTable(a, doc.Menus); err != nil {
				return err
			}

			report := services.BuildPricingReport(doc.Menus)
			if report.MissingCount() == 0 {
				a.logger.Info().Int("items", report.TotalItems).Msg("all items priced")
				return nil
			}
			a.logger.Warn().
				Int("items", report.TotalItems).
				Int("missing", report.MissingCount()).
				Msg("items without a sell price")
			for i, m := range report.Missing {
				if i == maxMissingListed {
					a.logger.Warn().Msgf("... and %d more", len(report.Missing)-maxMissingListed)
					break
				}
				a.logger.Warn().Str("menu", m.MenuID).Str("section", m.Section).Str("item", m.Item).Msg("missing price")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dataFile, "data", "", "catalog JSON file (built-in catalog when empty)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the priced catalog as JSON")
	return cmd
}

func writePriceTable(a *app, menus []services.Menu) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MENU\tSECTION\tITEM\tTYPE\tPRICE")
	for _, menu := range menus {
		for _, section := range menu.Sections {
			for _, item := range section.Items {
				if item.Name == "" {
					continue
				}
				price := "-"
				if sell, ok := item.SellPrice(); ok {
					price = services.FormatUSD(sell)
					if item.ResolvedPricingType() == services.PricingPerPerson {
						price += "/guest"
					}
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", menu.ID, section.Title, item.Name, item.ResolvedPricingType(), price)
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write price table: %w", err)
	}
	return nil
}
