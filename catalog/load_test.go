package catalog_test

import (
	"path/filepath"
	"strings"
	"testing"

	"privateevents/catalog"
	"privateevents/services"
)

func TestLoadFile_Testdata(t *testing.T) {
	doc, err := catalog.LoadFile(filepath.Join("testdata", "private-events.json"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(doc.Menus) != 2 {
		t.Fatalf("expected 2 menus, got %d", len(doc.Menus))
	}
	if len(doc.BeverageAddons) != 4 {
		t.Errorf("expected 4 addons, got %d", len(doc.BeverageAddons))
	}

	priced := catalog.Priced(doc, services.DefaultPricingConfig())
	tests := []struct {
		menu   string
		item   string
		expect string
	}{
		{"cocktail", "Charcuterie Board", "175"},
		{"cocktail", "Slider Station", "140"},
		{"cocktail", "Crab Cakes", "9"},
		{"cocktail", "Deviled Eggs", "4"},
		{"dessert", "Cookie Tray", "60"},
	}
	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			item := findItem(t, priced.Menus, tt.menu, tt.item)
			price, ok := item.SellPrice()
			if !ok || price.String() != tt.expect {
				t.Errorf("price = %s (ok=%v), want %s", price, ok, tt.expect)
			}
		})
	}

	report := services.BuildPricingReport(priced.Menus)
	if report.TotalItems != 7 || report.MissingCount() != 2 {
		t.Errorf("report total/missing = %d/%d, want 7/2", report.TotalItems, report.MissingCount())
	}
	if report.Missing[0].Item != "Raw Bar" || report.Missing[1].Item != "Caprese Skewers" {
		t.Errorf("Missing = %+v", report.Missing)
	}

	if doc.Menus[0].Sections[0].Items[1].FixedPrice.Valid {
		t.Error("Priced changed the loaded document")
	}
}

func TestLoadFile_EmptyPathIsDefault(t *testing.T) {
	doc, err := catalog.LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(doc.Menus) != 3 || doc.Menus[0].ID != "brunch" {
		t.Errorf("expected the built-in catalog, got %d menus", len(doc.Menus))
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "open catalog") {
		t.Errorf("expected open error, got %v", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := catalog.Load(strings.NewReader(`{"menus": [`))
	if err == nil || !strings.Contains(err.Error(), "decode catalog") {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestLoad_BuilderFromDocument(t *testing.T) {
	doc, err := catalog.Load(strings.NewReader(`{"menus":[{"id":"m","label":"M","sections":[{"title":"Mains","items":[{"name":"Soup","per_person_price":"6"}]}]}]}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b := services.NewBuilder(doc.Menus, doc.BeverageAddons)
	b.SetGuestCount(12)
	b.ToggleItem("Soup")

	if got := b.ComputeEstimate().Subtotal.String(); got != "72" {
		t.Errorf("Subtotal = %s, want 72", got)
	}
}
