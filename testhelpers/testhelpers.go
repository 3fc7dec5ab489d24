// Package testhelpers provides fixtures and assertions shared by package tests.
package testhelpers

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/shopspring/decimal"

	"privateevents/catalog"
	"privateevents/services"
)

// NewTestBuilder returns a builder seeded with the priced built-in catalog.
func NewTestBuilder(t *testing.T, opts ...services.BuilderOption) *services.Builder {
	t.Helper()

	doc := catalog.Priced(catalog.Default(), services.DefaultPricingConfig())
	return services.NewBuilder(doc.Menus, doc.BeverageAddons, opts...)
}

// TestAddons returns a small set of beverage addons for tests that need them.
func TestAddons() []services.BeverageAddon {
	return []services.BeverageAddon{
		{ID: "soda", Label: "Soda & Iced Tea", PerPersonPrice: amount("2.5")},
		{ID: "wine", Label: "House Wine", FixedPrice: amount("28"), AllowQuantity: true, MaxQty: 12},
	}
}

// RenderComponent renders c and returns the markup, failing the test on error.
func RenderComponent(t *testing.T, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render component: %v", err)
	}
	return buf.String()
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
