package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"privateevents/services"
	"privateevents/templates"
)

const quoteDateFormat = "02 Jan 2006"

type quoteOptions struct {
	dataFile string
	menuID   string
	guests   string
	items    []string
	addons   []string
	format   string
	outFile  string
}

func newQuoteCommand(a *app) *cobra.Command {
	var opts quoteOptions

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Build an estimate from menu selections",
		Long: "Replays the selections as builder events, then prints the summary text,\n" +
			"renders the builder HTML, or writes an xlsx or pdf quote.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			render, err := quoteRenderer(opts.format)
			if err != nil {
				return err
			}
			b, err := a.buildQuote(opts)
			if err != nil {
				return err
			}
			out, err := render(cmd.Context(), a, b)
			if err != nil {
				return err
			}
			return a.writeOutput(opts.outFile, out, "quote")
		},
	}
	cmd.Flags().StringVar(&opts.dataFile, "data", "", "catalog JSON file (built-in catalog when empty)")
	cmd.Flags().StringVar(&opts.menuID, "menu", "", "menu id (first menu when empty)")
	cmd.Flags().StringVar(&opts.guests, "guests", "", "guest count")
	cmd.Flags().StringArrayVar(&opts.items, "item", nil, "item to select, as name or name=qty (repeatable)")
	cmd.Flags().StringArrayVar(&opts.addons, "addon", nil, "beverage addon to select, as key or key=qty (repeatable)")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text, html, xlsx or pdf")
	cmd.Flags().StringVarP(&opts.outFile, "out", "o", "", "write to file instead of stdout")
	return cmd
}

type renderFunc func(ctx context.Context, a *app, b *services.Builder) ([]byte, error)

func quoteRenderer(format string) (renderFunc, error) {
	switch format {
	case "text":
		return func(ctx context.Context, a *app, b *services.Builder) ([]byte, error) {
			return []byte(b.BuildSummaryText() + "\n"), nil
		}, nil
	case "html":
		return func(ctx context.Context, a *app, b *services.Builder) ([]byte, error) {
			var buf bytes.Buffer
			if err := templates.MenuBuilder(b.View()).Render(ctx, &buf); err != nil {
				return nil, fmt.Errorf("render builder: %w", err)
			}
			return buf.Bytes(), nil
		}, nil
	case "xlsx":
		return func(ctx context.Context, a *app, b *services.Builder) ([]byte, error) {
			return services.GenerateQuoteExcel(a.exportData(b))
		}, nil
	case "pdf":
		return func(ctx context.Context, a *app, b *services.Builder) ([]byte, error) {
			return services.GenerateQuotePDF(a.exportData(b))
		}, nil
	}
	return nil, fmt.Errorf("--format: unknown format %q", format)
}

func (a *app) exportData(b *services.Builder) services.QuoteExport {
	return b.ExportData(a.newRef(), a.now().Format(quoteDateFormat))
}

// buildQuote drives a builder the way the page does: pick the menu, set the
// guest count, then apply each selection in order.
func (a *app) buildQuote(opts quoteOptions) (*services.Builder, error) {
	items, err := parseSelections(opts.items)
	if err != nil {
		return nil, fmt.Errorf("--item: %w", err)
	}
	addons, err := parseSelections(opts.addons)
	if err != nil {
		return nil, fmt.Errorf("--addon: %w", err)
	}

	doc, err := a.loadPriced(opts.dataFile)
	if err != nil {
		return nil, err
	}
	b := services.NewBuilder(doc.Menus, doc.BeverageAddons,
		services.WithConfig(a.cfg),
		services.WithLogger(a.logger),
	)

	if opts.menuID != "" {
		if !hasMenu(b, opts.menuID) {
			return nil, fmt.Errorf("unknown menu %q", opts.menuID)
		}
		b.SelectMenu(opts.menuID)
	}
	if opts.guests != "" {
		b.SetGuestCountInput(opts.guests)
	}

	menu, _ := b.CurrentMenu()
	for _, sel := range items {
		if !hasItem(menu, sel.Name) {
			return nil, fmt.Errorf("menu %q has no item %q", b.CurrentMenuID(), sel.Name)
		}
		b.SetItemQuantity(sel.Name, sel.Qty)
	}
	for _, sel := range addons {
		if !hasAddon(b, sel.Name) {
			return nil, fmt.Errorf("unknown beverage addon %q", sel.Name)
		}
		b.SetAddonQuantity(sel.Name, sel.Qty)
	}
	return b, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func (a *app) writeOutput(path string, data []byte, what string) error {
	if path == "" {
		if _, err := a.out.Write(data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	a.logger.Info().Str("file", path).Int("bytes", len(data)).Msg(what + " written")
	return nil
}

func hasMenu(b *services.Builder, id string) bool {
	for _, m := range b.Menus() {
		if m.ID == id {
			return true
		}
	}
	return false
}

func hasItem(menu services.Menu, name string) bool {
	for _, section := range menu.Sections {
		for _, item := range section.Items {
			if item.Name == name {
				return true
			}
		}
	}
	return false
}

func hasAddon(b *services.Builder, key string) bool {
	for _, addon := range b.Addons() {
		if addon.Key() == key {
			return true
		}
	}
	return false
}
