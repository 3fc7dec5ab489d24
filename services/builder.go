package services

import (
	"math"

	"github.com/rs/zerolog"
)

// SelectionGroup is the selected items of one section, in display order.
type SelectionGroup struct {
	Title string
	Items []SelectedItem
}

// Quote is one consistent snapshot of the builder: the numbers and the summary
// text are always computed from the same selections.
type Quote struct {
	MenuID    string
	MenuLabel string
	Estimate  Estimate
	Groups    []SelectionGroup
	Addons    []SelectedAddon
	Summary   string
}

// Builder tracks a guest's private-event menu selections and keeps a live
// estimate. It is meant to be driven from a single event loop and is not safe
// for concurrent use.
type Builder struct {
	cfg    PricingConfig
	logger zerolog.Logger

	menus      []Menu
	menuIndex  map[string]int
	addons     []BeverageAddon
	addonIndex map[string]int

	currentMenuID    string
	selectionsByMenu map[string]map[string]int
	addonSelections  map[string]int
	guestCount       int

	quote Quote
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithConfig replaces the default pricing configuration.
func WithConfig(cfg PricingConfig) BuilderOption {
	return func(b *Builder) {
		b.cfg = cfg
	}
}

// WithLogger sets the diagnostics logger. The default discards everything.
func WithLogger(logger zerolog.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder seeds a builder with an already priced catalog. Items without a
// name and addons without any key are dropped. The first menu starts selected.
func NewBuilder(menus []Menu, addons []BeverageAddon, opts ...BuilderOption) *Builder {
	b := &Builder{
		cfg:              DefaultPricingConfig(),
		logger:           zerolog.Nop(),
		menuIndex:        make(map[string]int),
		addonIndex:       make(map[string]int),
		selectionsByMenu: make(map[string]map[string]int),
		addonSelections:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(b)
	}

	for _, menu := range cloneMenus(menus) {
		if _, dup := b.menuIndex[menu.ID]; dup {
			b.logger.Warn().Str("menu", menu.ID).Msg("duplicate menu id ignored")
			continue
		}
		for i := range menu.Sections {
			kept := menu.Sections[i].Items[:0]
			for _, item := range menu.Sections[i].Items {
				if item.Name != "" {
					kept = append(kept, item)
				}
			}
			menu.Sections[i].Items = kept
		}
		b.menuIndex[menu.ID] = len(b.menus)
		b.menus = append(b.menus, menu)
	}
	for _, addon := range addons {
		key := addon.Key()
		if key == "" {
			continue
		}
		if _, dup := b.addonIndex[key]; dup {
			continue
		}
		b.addonIndex[key] = len(b.addons)
		b.addons = append(b.addons, addon)
	}

	if len(b.menus) > 0 {
		b.currentMenuID = b.menus[0].ID
	}
	b.guestCount = NormalizeGuestCount(math.NaN(), b.cfg.MinGuestCount)
	b.recompute()
	return b
}

// Config returns the pricing configuration in use.
func (b *Builder) Config() PricingConfig { return b.cfg }

// Menus returns the catalog the builder was seeded with.
func (b *Builder) Menus() []Menu { return cloneMenus(b.menus) }

// Addons returns the beverage addons on offer.
func (b *Builder) Addons() []BeverageAddon { return append([]BeverageAddon(nil), b.addons...) }

// CurrentMenu returns the active menu; ok is false for an empty catalog.
func (b *Builder) CurrentMenu() (Menu, bool) {
	menu, ok := b.currentMenu()
	if !ok {
		return Menu{}, false
	}
	return cloneMenus([]Menu{menu})[0], true
}

func (b *Builder) currentMenu() (Menu, bool) {
	i, ok := b.menuIndex[b.currentMenuID]
	if !ok || len(b.menus) == 0 {
		return Menu{}, false
	}
	return b.menus[i], true
}

// CurrentMenuID returns the id of the active menu.
func (b *Builder) CurrentMenuID() string { return b.currentMenuID }

// GuestCount returns the normalised guest count.
func (b *Builder) GuestCount() int { return b.guestCount }

// ItemQuantity returns the stored quantity of an item on the active menu.
func (b *Builder) ItemQuantity(name string) int {
	return b.selectionsByMenu[b.currentMenuID][name]
}

// MenuItemQuantity returns the stored quantity of an item on any menu.
func (b *Builder) MenuItemQuantity(menuID, name string) int {
	return b.selectionsByMenu[menuID][name]
}

// AddonQuantity returns the stored quantity of an addon.
func (b *Builder) AddonQuantity(key string) int {
	return b.addonSelections[key]
}

// SelectMenu switches the active menu. Selections made on other menus are kept.
func (b *Builder) SelectMenu(id string) {
	if id == b.currentMenuID {
		return
	}
	if _, ok := b.menuIndex[id]; !ok {
		b.logger.Debug().Str("menu", id).Msg("unknown menu ignored")
		return
	}
	b.currentMenuID = id
	b.recompute()
}

// SetItemQuantity stores qty for an item on the active menu. Toggle items store
// 0 or 1; quantity items clamp to [0, MaxQty]. Zero removes the entry.
func (b *Builder) SetItemQuantity(name string, qty int) {
	item, ok := b.findItem(name)
	if !ok {
		b.logger.Debug().Str("menu", b.currentMenuID).Str("item", name).Msg("unknown item ignored")
		return
	}
	selections := b.selectionsByMenu[b.currentMenuID]
	if selections == nil {
		selections = make(map[string]int)
		b.selectionsByMenu[b.currentMenuID] = selections
	}
	bounded := clampQuantity(qty, item.AllowQuantity, item.MaxQty)
	storeQuantity(selections, name, bounded)
	b.logger.Debug().Str("item", name).Int("qty", bounded).Msg("qty change")
	b.recompute()
}

// ToggleItem flips an item between unselected and a quantity of one.
func (b *Builder) ToggleItem(name string) {
	if b.ItemQuantity(name) > 0 {
		b.SetItemQuantity(name, 0)
		return
	}
	b.SetItemQuantity(name, 1)
}

// AdjustItemQuantity adds delta to the stored quantity, as the -/+ buttons do.
func (b *Builder) AdjustItemQuantity(name string, delta int) {
	b.SetItemQuantity(name, b.ItemQuantity(name)+delta)
}

// SetAddonQuantity stores qty for an addon with the same clamping as items.
// Addon selections are shared by all menus.
func (b *Builder) SetAddonQuantity(key string, qty int) {
	i, ok := b.addonIndex[key]
	if !ok {
		b.logger.Debug().Str("addon", key).Msg("unknown addon ignored")
		return
	}
	addon := b.addons[i]
	storeQuantity(b.addonSelections, key, clampQuantity(qty, addon.AllowQuantity, addon.MaxQty))
	b.recompute()
}

// ToggleAddon flips an addon between unselected and a quantity of one.
func (b *Builder) ToggleAddon(key string) {
	if b.AddonQuantity(key) > 0 {
		b.SetAddonQuantity(key, 0)
		return
	}
	b.SetAddonQuantity(key, 1)
}

// SetGuestCount floors n and clamps it to the configured minimum. NaN and
// infinities become the minimum.
func (b *Builder) SetGuestCount(n float64) {
	b.guestCount = NormalizeGuestCount(n, b.cfg.MinGuestCount)
	b.recompute()
}

// SetGuestCountInput accepts raw form input such as "24" or "".
func (b *Builder) SetGuestCountInput(raw any) {
	b.guestCount = ParseGuestCount(raw, b.cfg.MinGuestCount)
	b.recompute()
}

// Quote returns the current snapshot.
func (b *Builder) Quote() Quote { return b.quote }

// ComputeEstimate returns the estimate of the current snapshot.
func (b *Builder) ComputeEstimate() Estimate { return b.quote.Estimate }

// BuildSummaryText returns the plain-text breakdown of the current snapshot.
func (b *Builder) BuildSummaryText() string { return b.quote.Summary }

// Selections returns the selected items of the active menu grouped by section.
func (b *Builder) Selections() []SelectionGroup { return b.quote.Groups }

// SelectedAddons returns the selected addons in catalog order.
func (b *Builder) SelectedAddons() []SelectedAddon { return b.quote.Addons }

func (b *Builder) findItem(name string) (MenuItem, bool) {
	menu, ok := b.currentMenu()
	if !ok {
		return MenuItem{}, false
	}
	for _, section := range menu.Sections {
		for _, item := range section.Items {
			if item.Name == name {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}

// recompute rebuilds the whole snapshot and swaps it in at the end.
func (b *Builder) recompute() {
	menu, _ := b.currentMenu()
	selections := b.selectionsByMenu[b.currentMenuID]

	var groups []SelectionGroup
	var items []SelectedItem
	for _, section := range menu.Sections {
		var matches []SelectedItem
		for _, item := range section.Items {
			if qty := selections[item.Name]; qty > 0 {
				matches = append(matches, SelectedItem{MenuItem: item, Section: section.Title, Qty: qty})
			}
		}
		if len(matches) == 0 {
			continue
		}
		title := section.Title
		if title == "" {
			title = "Selections"
		}
		groups = append(groups, SelectionGroup{Title: title, Items: matches})
		items = append(items, matches...)
	}

	var addons []SelectedAddon
	for _, addon := range b.addons {
		if qty := b.addonSelections[addon.Key()]; qty > 0 {
			addons = append(addons, SelectedAddon{BeverageAddon: addon, Qty: qty})
		}
	}

	label := menu.Label
	if label == "" {
		label = b.currentMenuID
	}
	est := ComputeEstimate(EstimateInput{
		MenuID:     b.currentMenuID,
		GuestCount: b.guestCount,
		Items:      items,
		Addons:     addons,
	}, b.cfg, b.logger)

	next := Quote{
		MenuID:    b.currentMenuID,
		MenuLabel: label,
		Estimate:  est,
		Groups:    groups,
		Addons:    addons,
	}
	next.Summary = BuildSummary(next, b.cfg)
	b.quote = next

	if ev := b.logger.Debug(); ev.Enabled() {
		quantities := make(map[string]int, len(selections)+len(b.addonSelections))
		for name, qty := range selections {
			quantities[name] = qty
		}
		for key, qty := range b.addonSelections {
			quantities["addon:"+key] = qty
		}
		ev.Int("guests", est.GuestCount).
			Int("selected", len(items)).
			Str("fixed_total", est.FixedSellTotal.String()).
			Str("per_person_subtotal", est.PerPersonSellTotal.String()).
			Str("total", est.Total.String()).
			Str("food_cost", est.FoodCostTotal.String()).
			Interface("quantities", quantities).
			Msg("estimate updated")
	}
}

func clampQuantity(qty int, allowQuantity bool, maxQty int) int {
	if !allowQuantity {
		if qty > 0 {
			return 1
		}
		return 0
	}
	if maxQty > 0 && qty > maxQty {
		qty = maxQty
	}
	if qty < 0 {
		return 0
	}
	return qty
}

func storeQuantity(selections map[string]int, key string, qty int) {
	if qty <= 0 {
		delete(selections, key)
		return
	}
	selections[key] = qty
}
