package services

import "testing"

func TestBuildPricingReport(t *testing.T) {
	menus := testMenus()
	menus[0].Sections[2].Items = append(menus[0].Sections[2].Items,
		MenuItem{Name: "Rolls", PricingType: PricingPerPerson},
		MenuItem{Name: ""},
	)

	report := BuildPricingReport(menus)

	if report.TotalItems != 9 {
		t.Errorf("TotalItems = %d, want 9", report.TotalItems)
	}
	if report.PricedItems != 7 {
		t.Errorf("PricedItems = %d, want 7", report.PricedItems)
	}
	if report.MissingCount() != 2 {
		t.Errorf("MissingCount = %d, want 2", report.MissingCount())
	}

	want := []MissingPrice{
		{MenuID: "party", Section: "Mains", Item: "Chef's Special"},
		{MenuID: "party", Section: "Sides", Item: "Rolls"},
	}
	if len(report.Missing) != len(want) {
		t.Fatalf("Missing = %+v", report.Missing)
	}
	for i := range want {
		if report.Missing[i] != want[i] {
			t.Errorf("Missing[%d] = %+v, want %+v", i, report.Missing[i], want[i])
		}
	}
	if len(report.BySection) != 2 || report.BySection[0].Count != 1 || report.BySection[1].Section != "Sides" {
		t.Errorf("BySection = %+v", report.BySection)
	}
}

func TestBuildPricingReport_AfterDerivation(t *testing.T) {
	raw := []Menu{{ID: "m", Sections: []MenuSection{{Title: "Boards", Items: []MenuItem{
		{Name: "Board", PricingType: PricingFixed, CogsPerPerson: amt("5.94"), ServingsPerBatch: amt("16")},
		{Name: "Mystery Board", PricingType: PricingFixed},
	}}}}}

	before := BuildPricingReport(raw)
	after := BuildPricingReport(DerivePrices(raw, DefaultPricingConfig()))

	if before.PricedItems != 0 || after.PricedItems != 1 {
		t.Errorf("priced before/after = %d/%d, want 0/1", before.PricedItems, after.PricedItems)
	}
	if after.Missing[0].Item != "Mystery Board" {
		t.Errorf("Missing = %+v", after.Missing)
	}
}

func TestBuildPricingReport_Empty(t *testing.T) {
	report := BuildPricingReport(nil)
	if report.TotalItems != 0 || report.MissingCount() != 0 || report.Missing != nil {
		t.Errorf("report = %+v", report)
	}
}
