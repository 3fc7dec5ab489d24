package services

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func amt(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func assertAmount(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", field, got, want)
	}
}

// testMenus is a small, already priced catalog.
func testMenus() []Menu {
	return []Menu{
		{
			ID:    "party",
			Label: "Party Menu",
			Sections: []MenuSection{
				{
					Title: "Boards",
					Items: []MenuItem{
						{Name: "Superboard", PricingType: PricingFixed, FixedPrice: amt("150"), CogsPerBatch: amt("95"), ServingsPerBatch: amt("16"), AllowQuantity: true, MaxQty: 4},
						{Name: "Cookie Tray", PricingType: PricingFixed, FixedPrice: amt("140"), CogsPerPerson: amt("2"), ServingsPerBatch: amt("20")},
					},
				},
				{
					Title: "Mains",
					Items: []MenuItem{
						{Name: "Chicken", PricingType: PricingPerPerson, PerPersonPrice: amt("8"), CogsPerPerson: amt("1.85"), Category: "entree"},
						{Name: "Lasagna", PricingType: PricingPerPerson, PerPersonPrice: amt("9"), CogsPerPerson: amt("2.5"), Category: "entree"},
						{Name: "Chef's Special", PricingType: PricingPerPerson, Category: "entree"},
					},
				},
				{
					Title: "Sides",
					Items: []MenuItem{
						{Name: "Green Beans", PricingType: PricingPerPerson, PerPersonPrice: amt("3"), CogsPerPerson: amt("0.69"), Category: "side", AllowQuantity: true},
					},
				},
			},
		},
		{
			ID:    "picnic",
			Label: "Picnic",
			Sections: []MenuSection{
				{
					Title: "Proteins",
					Items: []MenuItem{
						{Name: "Hot Dogs", PricingType: PricingPerPerson, PerPersonPrice: amt("8"), CogsPerPerson: amt("0.98"), Category: "entree"},
						{Name: "Chicken", PricingType: PricingPerPerson, PerPersonPrice: amt("8"), CogsPerPerson: amt("1.6"), Category: "entree"},
					},
				},
			},
		},
	}
}

func testAddons() []BeverageAddon {
	return []BeverageAddon{
		{ID: "soda", Label: "Soda Station", PerPersonPrice: amt("2")},
		{ID: "wine", Label: "Wine Bottles", FixedPrice: amt("30"), AllowQuantity: true, MaxQty: 6},
	}
}
