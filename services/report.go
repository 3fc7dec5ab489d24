package services

// MissingPrice names an item that has neither an explicit nor a derivable sell price.
type MissingPrice struct {
	MenuID  string
	Section string
	Item    string
}

// SectionMissing counts unpriced items in one section of one menu.
type SectionMissing struct {
	MenuID  string
	Section string
	Count   int
}

// PricingReport summarises how much of a priced catalog actually has prices.
type PricingReport struct {
	TotalItems  int
	PricedItems int
	Missing     []MissingPrice
	BySection   []SectionMissing
}

// MissingCount is the number of unpriced items.
func (r PricingReport) MissingCount() int {
	return r.TotalItems - r.PricedItems
}

// BuildPricingReport walks menus in display order. Nameless items are skipped
// because the builder never shows them.
func BuildPricingReport(menus []Menu) PricingReport {
	var report PricingReport
	for _, menu := range menus {
		for _, section := range menu.Sections {
			missing := 0
			for _, item := range section.Items {
				if item.Name == "" {
					continue
				}
				report.TotalItems++
				if _, ok := item.SellPrice(); ok {
					report.PricedItems++
					continue
				}
				missing++
				report.Missing = append(report.Missing, MissingPrice{
					MenuID:  menu.ID,
					Section: section.Title,
					Item:    item.Name,
				})
			}
			if missing > 0 {
				report.BySection = append(report.BySection, SectionMissing{
					MenuID:  menu.ID,
					Section: section.Title,
					Count:   missing,
				})
			}
		}
	}
	return report
}
