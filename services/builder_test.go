package services

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	return NewBuilder(testMenus(), testAddons())
}

func TestNewBuilder_Defaults(t *testing.T) {
	b := newTestBuilder(t)

	if b.CurrentMenuID() != "party" {
		t.Errorf("CurrentMenuID = %q, want first menu %q", b.CurrentMenuID(), "party")
	}
	if b.GuestCount() != 10 {
		t.Errorf("GuestCount = %d, want minimum 10", b.GuestCount())
	}
	est := b.ComputeEstimate()
	assertAmount(t, "Total", est.Total, "0")
	if !strings.Contains(b.BuildSummaryText(), "- None selected") {
		t.Errorf("summary missing empty marker:\n%s", b.BuildSummaryText())
	}
}

func TestNewBuilder_DropsNamelessItems(t *testing.T) {
	menus := []Menu{{ID: "m", Sections: []MenuSection{{Title: "S", Items: []MenuItem{{Name: ""}, {Name: "Soup", PerPersonPrice: amt("4")}}}}}}
	b := NewBuilder(menus, []BeverageAddon{{}})

	menu, ok := b.CurrentMenu()
	if !ok {
		t.Fatal("CurrentMenu not found")
	}
	if got := len(menu.Sections[0].Items); got != 1 {
		t.Errorf("items = %d, want 1", got)
	}
	if got := len(b.Addons()); got != 0 {
		t.Errorf("addons = %d, want 0 for keyless addon", got)
	}
	if got := len(menus[0].Sections[0].Items); got != 2 {
		t.Errorf("caller's catalog changed: %d items", got)
	}
}

func TestBuilder_EmptyCatalog(t *testing.T) {
	b := NewBuilder(nil, nil)

	b.SetItemQuantity("Anything", 3)
	b.SelectMenu("brunch")
	b.SetGuestCount(50)

	if _, ok := b.CurrentMenu(); ok {
		t.Error("CurrentMenu ok for empty catalog")
	}
	assertAmount(t, "Total", b.ComputeEstimate().Total, "0")
	if b.GuestCount() != 50 {
		t.Errorf("GuestCount = %d, want 50", b.GuestCount())
	}
}

func TestBuilder_SetItemQuantity_Clamp(t *testing.T) {
	tests := []struct {
		name   string
		qty    int
		expect int
	}{
		{"within bounds", 3, 3},
		{"at max", 4, 4},
		{"above max clamps", 9, 4},
		{"zero removes", 0, 0},
		{"negative removes", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t)
			b.SetItemQuantity("Superboard", 2)
			b.SetItemQuantity("Superboard", tt.qty)
			if got := b.ItemQuantity("Superboard"); got != tt.expect {
				t.Errorf("ItemQuantity = %d, want %d", got, tt.expect)
			}
			if tt.expect == 0 {
				if _, stored := b.selectionsByMenu["party"]["Superboard"]; stored {
					t.Error("zero quantity stored explicitly")
				}
			}
		})
	}
}

func TestBuilder_SetItemQuantity_Unbounded(t *testing.T) {
	b := newTestBuilder(t)
	b.SetItemQuantity("Green Beans", 25)
	if got := b.ItemQuantity("Green Beans"); got != 25 {
		t.Errorf("ItemQuantity = %d, want 25 with no max", got)
	}
}

func TestBuilder_SetItemQuantity_ToggleItems(t *testing.T) {
	b := newTestBuilder(t)

	b.SetItemQuantity("Chicken", 5)
	if got := b.ItemQuantity("Chicken"); got != 1 {
		t.Errorf("toggle item quantity = %d, want 1", got)
	}
	b.SetItemQuantity("Chicken", -1)
	if got := b.ItemQuantity("Chicken"); got != 0 {
		t.Errorf("toggle item quantity = %d, want 0", got)
	}
}

func TestBuilder_ToggleAndAdjust(t *testing.T) {
	b := newTestBuilder(t)

	b.ToggleItem("Superboard")
	if got := b.ItemQuantity("Superboard"); got != 1 {
		t.Fatalf("after toggle on = %d, want 1", got)
	}
	b.AdjustItemQuantity("Superboard", 1)
	b.AdjustItemQuantity("Superboard", 1)
	if got := b.ItemQuantity("Superboard"); got != 3 {
		t.Errorf("after two increments = %d, want 3", got)
	}
	b.ToggleItem("Superboard")
	if got := b.ItemQuantity("Superboard"); got != 0 {
		t.Errorf("after toggle off = %d, want 0", got)
	}
	b.AdjustItemQuantity("Superboard", -1)
	if got := b.ItemQuantity("Superboard"); got != 0 {
		t.Errorf("decrement below zero = %d, want 0", got)
	}
}

func TestBuilder_UnknownItemIsNoop(t *testing.T) {
	b := newTestBuilder(t)
	b.SetItemQuantity("Hot Dogs", 1) // only on the picnic menu
	if got := b.ItemQuantity("Hot Dogs"); got != 0 {
		t.Errorf("ItemQuantity = %d, want 0", got)
	}
	if b.ComputeEstimate().HasSelections {
		t.Error("unknown item became a selection")
	}
}

func TestBuilder_SetGuestCount(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect int
	}{
		{"NaN", math.NaN(), 10},
		{"positive infinity", math.Inf(1), 10},
		{"below minimum", 3, 10},
		{"negative", -20, 10},
		{"at minimum", 10, 10},
		{"fraction floors", 24.9, 24},
		{"large", 150, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t)
			b.SetGuestCount(tt.input)
			if got := b.GuestCount(); got != tt.expect {
				t.Errorf("GuestCount = %d, want %d", got, tt.expect)
			}
		})
	}
}

func TestBuilder_SetGuestCountInput(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		expect int
	}{
		{"empty", "", 10},
		{"not a number", "lots", 10},
		{"numeric string", "32", 32},
		{"float string", "32.7", 32},
		{"int", 45, 45},
		{"nil", nil, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t)
			b.SetGuestCountInput(tt.input)
			if got := b.GuestCount(); got != tt.expect {
				t.Errorf("GuestCount = %d, want %d", got, tt.expect)
			}
		})
	}
}

func TestBuilder_CustomMinimumGuests(t *testing.T) {
	cfg := DefaultPricingConfig()
	cfg.MinGuestCount = 25
	b := NewBuilder(testMenus(), nil, WithConfig(cfg))

	if b.GuestCount() != 25 {
		t.Errorf("initial GuestCount = %d, want 25", b.GuestCount())
	}
	b.SetGuestCount(12)
	if b.GuestCount() != 25 {
		t.Errorf("GuestCount = %d, want 25", b.GuestCount())
	}
}

func TestBuilder_SelectMenuPreservesSelections(t *testing.T) {
	b := newTestBuilder(t)
	b.SetItemQuantity("Superboard", 3)
	b.SetItemQuantity("Chicken", 1)

	b.SelectMenu("picnic")
	if b.CurrentMenuID() != "picnic" {
		t.Fatalf("CurrentMenuID = %q, want picnic", b.CurrentMenuID())
	}
	if got := b.ItemQuantity("Chicken"); got != 0 {
		t.Errorf("picnic Chicken = %d, want 0 (selections are per menu)", got)
	}
	b.SetItemQuantity("Hot Dogs", 1)

	b.SelectMenu("party")
	if got := b.ItemQuantity("Superboard"); got != 3 {
		t.Errorf("Superboard after switching back = %d, want 3", got)
	}
	if got := b.ItemQuantity("Chicken"); got != 1 {
		t.Errorf("Chicken after switching back = %d, want 1", got)
	}
	if got := b.MenuItemQuantity("picnic", "Hot Dogs"); got != 1 {
		t.Errorf("picnic Hot Dogs = %d, want 1", got)
	}
}

func TestBuilder_SelectMenuUnknownOrCurrent(t *testing.T) {
	b := newTestBuilder(t)
	b.SetItemQuantity("Chicken", 1)
	before := b.Quote()

	b.SelectMenu("party")
	b.SelectMenu("nope")

	if b.CurrentMenuID() != "party" {
		t.Errorf("CurrentMenuID = %q, want party", b.CurrentMenuID())
	}
	if b.Quote().Summary != before.Summary {
		t.Error("no-op menu selection changed the quote")
	}
}

func TestBuilder_EstimateTracksActiveMenuOnly(t *testing.T) {
	b := newTestBuilder(t)
	b.SetGuestCount(20)
	b.SetItemQuantity("Superboard", 1)

	b.SelectMenu("picnic")
	assertAmount(t, "picnic Total", b.ComputeEstimate().Total, "0")

	b.SelectMenu("party")
	assertAmount(t, "party Subtotal", b.ComputeEstimate().Subtotal, "150")
}

func TestBuilder_AddonsSharedAcrossMenus(t *testing.T) {
	b := newTestBuilder(t)
	b.ToggleAddon("soda")
	b.SetAddonQuantity("wine", 10)

	if got := b.AddonQuantity("wine"); got != 6 {
		t.Errorf("wine = %d, want clamp to 6", got)
	}

	b.SelectMenu("picnic")
	if got := b.AddonQuantity("soda"); got != 1 {
		t.Errorf("soda on picnic = %d, want 1", got)
	}
	est := b.ComputeEstimate()
	assertAmount(t, "FixedSellTotal", est.FixedSellTotal, "180")
	assertAmount(t, "PerPersonSellTotal", est.PerPersonSellTotal, "2")

	b.ToggleAddon("soda")
	b.SetAddonQuantity("wine", -1)
	b.SetAddonQuantity("unknown", 1)
	if b.ComputeEstimate().HasSelections {
		t.Error("HasSelections after clearing all addons")
	}
}

func TestBuilder_Scenario(t *testing.T) {
	b := newTestBuilder(t)
	b.SetGuestCount(20)
	b.SetItemQuantity("Chicken", 1)
	b.SetItemQuantity("Superboard", 1)

	est := b.ComputeEstimate()
	assertAmount(t, "Subtotal", est.Subtotal, "310")
	assertAmount(t, "TaxAmount", est.TaxAmount, "22")
	assertAmount(t, "GratuityAmount", est.GratuityAmount, "56")
	assertAmount(t, "Total", est.Total, "388")
}

func TestBuilder_ClearingSelectionsZeroesTaxAndGratuity(t *testing.T) {
	b := newTestBuilder(t)
	b.SetGuestCount(30)
	b.SetItemQuantity("Lasagna", 1)
	b.SetItemQuantity("Lasagna", 0)

	est := b.ComputeEstimate()
	assertAmount(t, "Total", est.Total, "0")
	assertAmount(t, "TaxAmount", est.TaxAmount, "0")
	assertAmount(t, "GratuityAmount", est.GratuityAmount, "0")
}

func TestBuilder_QuoteSnapshotConsistent(t *testing.T) {
	b := newTestBuilder(t)
	steps := []func(){
		func() { b.SetGuestCount(20) },
		func() { b.SetItemQuantity("Superboard", 2) },
		func() { b.ToggleAddon("soda") },
		func() { b.SelectMenu("picnic") },
		func() { b.SetItemQuantity("Hot Dogs", 1) },
		func() { b.SetGuestCount(45) },
	}
	for i, step := range steps {
		step()
		q := b.Quote()
		want := "Estimated food total: ~" + FormatUSD(q.Estimate.Total)
		if !strings.HasSuffix(q.Summary, want) {
			t.Errorf("step %d: summary does not end with %q:\n%s", i, want, q.Summary)
		}
		if !q.Estimate.Total.Equal(b.ComputeEstimate().Total) {
			t.Errorf("step %d: Quote and ComputeEstimate disagree", i)
		}
	}
}

func TestBuilder_SelectionsOrderedBySection(t *testing.T) {
	b := newTestBuilder(t)
	b.SetItemQuantity("Green Beans", 2)
	b.SetItemQuantity("Lasagna", 1)
	b.SetItemQuantity("Chicken", 1)
	b.SetItemQuantity("Superboard", 1)

	groups := b.Selections()
	var got []string
	for _, g := range groups {
		for _, item := range g.Items {
			got = append(got, g.Title+"/"+item.Name)
		}
	}
	want := []string{"Boards/Superboard", "Mains/Chicken", "Mains/Lasagna", "Sides/Green Beans"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("selections = %v, want %v", got, want)
	}
}

func TestBuilder_MissingPriceLogged(t *testing.T) {
	var buf bytes.Buffer
	b := NewBuilder(testMenus(), nil, WithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel)))

	b.SetItemQuantity("Chef's Special", 1)

	if !strings.Contains(buf.String(), "missing item pricing") {
		t.Errorf("expected missing pricing warning, got %q", buf.String())
	}
	if b.ItemQuantity("Chef's Special") != 1 {
		t.Error("unpriced item could not be selected")
	}
}

func TestBuilder_DebugEstimateEvent(t *testing.T) {
	var buf bytes.Buffer
	b := NewBuilder(testMenus(), testAddons(), WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	b.SetItemQuantity("Superboard", 2)
	b.ToggleAddon("soda")

	out := buf.String()
	for _, want := range []string{"estimate updated", `"Superboard":2`, `"addon:soda":1`} {
		if !strings.Contains(out, want) {
			t.Errorf("debug log missing %q:\n%s", want, out)
		}
	}
}

func TestBuilder_View(t *testing.T) {
	b := newTestBuilder(t)
	b.SetItemQuantity("Superboard", 2)
	b.ToggleAddon("wine")

	view := b.View()
	if len(view.Menus) != 2 || !view.Menus[0].Selected || view.Menus[1].Selected {
		t.Errorf("menus = %+v", view.Menus)
	}
	if len(view.Sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(view.Sections))
	}
	board := view.Sections[0].Items[0]
	if board.Name != "Superboard" || board.Qty != 2 || !board.AllowQuantity || board.PerGuest {
		t.Errorf("board view = %+v", board)
	}
	chicken := view.Sections[1].Items[0]
	if !chicken.PerGuest || chicken.Selected() {
		t.Errorf("chicken view = %+v", chicken)
	}
	special := view.Sections[1].Items[2]
	if special.PerGuest {
		t.Error("unpriced item shows per guest badge")
	}
	if !view.Addons[1].Selected || view.Addons[0].Selected {
		t.Errorf("addons = %+v", view.Addons)
	}
	if view.MinGuestCount != 10 || view.GuestCount != 10 {
		t.Errorf("guest counts = %d/%d", view.GuestCount, view.MinGuestCount)
	}
}
