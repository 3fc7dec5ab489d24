package services

// MenuOption is one menu-type toggle.
type MenuOption struct {
	ID       string
	Label    string
	Selected bool
}

// ItemView is one item button (or quantity control) in the builder.
type ItemView struct {
	Name          string
	AllowQuantity bool
	Qty           int
	MaxQty        int
	PerGuest      bool // show the "per guest" badge
}

// Selected reports whether the item is part of the order.
func (v ItemView) Selected() bool { return v.Qty > 0 }

// SectionView is a titled group of item views.
type SectionView struct {
	Title string
	Items []ItemView
}

// AddonView is one beverage addon toggle.
type AddonView struct {
	Key      string
	Label    string
	Qty      int
	Selected bool
}

// BuilderView is the render model of the builder at one snapshot.
type BuilderView struct {
	Menus         []MenuOption
	Sections      []SectionView
	Addons        []AddonView
	GuestCount    int
	MinGuestCount int
	Quote         Quote
}

// View assembles the render model from the current state.
func (b *Builder) View() BuilderView {
	view := BuilderView{
		GuestCount:    b.guestCount,
		MinGuestCount: b.cfg.MinGuestCount,
		Quote:         b.quote,
	}
	for _, menu := range b.menus {
		label := menu.Label
		if label == "" {
			label = menu.ID
		}
		view.Menus = append(view.Menus, MenuOption{
			ID:       menu.ID,
			Label:    label,
			Selected: menu.ID == b.currentMenuID,
		})
	}

	menu, _ := b.currentMenu()
	selections := b.selectionsByMenu[b.currentMenuID]
	for _, section := range menu.Sections {
		sv := SectionView{Title: section.Title}
		for _, item := range section.Items {
			sv.Items = append(sv.Items, ItemView{
				Name:          item.Name,
				AllowQuantity: item.AllowQuantity,
				Qty:           selections[item.Name],
				MaxQty:        item.MaxQty,
				PerGuest:      item.ResolvedPricingType() == PricingPerPerson && item.PerPersonPrice.Valid,
			})
		}
		view.Sections = append(view.Sections, sv)
	}

	for _, addon := range b.addons {
		qty := b.addonSelections[addon.Key()]
		view.Addons = append(view.Addons, AddonView{
			Key:      addon.Key(),
			Label:    addon.DisplayName(),
			Qty:      qty,
			Selected: qty > 0,
		})
	}
	return view
}
