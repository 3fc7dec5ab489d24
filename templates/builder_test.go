package templates_test

import (
	"testing"

	"privateevents/catalog"
	"privateevents/services"
	"privateevents/templates"
	"privateevents/testhelpers"
)

func TestMenuBuilder_Initial(t *testing.T) {
	b := testhelpers.NewTestBuilder(t)
	body := testhelpers.RenderComponent(t, templates.MenuBuilder(b.View()))

	testhelpers.AssertHTMLContains(t, body,
		`<div id="private-menu-builder">`,
		`class="btn btn-secondary btn-small menu-toggle is-selected" aria-pressed="true" data-menu-id="brunch">Brunch</button>`,
		`class="btn btn-secondary btn-small menu-toggle" aria-pressed="false" data-menu-id="lunch_dinner">Lunch &amp; Dinner</button>`,
		`<h3>Boards &amp; Stations</h3>`,
		`<div class="qty-control" data-item-name="Superboard" data-max-qty="4">`,
		`<span class="qty-value">0</span>`,
		`<input id="private-guest-count" name="guest_count" type="number" min="10" step="1" value="10">`,
		`<p class="note">Beverage service is quoted separately. Ask about bottle and case options.</p>`,
		`<p data-private-menu="estimate">Estimated food total: $0</p>`,
		`<textarea id="party-menu-summary" name="menu_summary" rows="12" readonly>Menu selection (estimate only)`,
	)
	testhelpers.AssertHTMLNotContains(t, body, "Lasagna", "Boards/stations: $")
}

func TestMenuBuilder_AfterSelections(t *testing.T) {
	b := testhelpers.NewTestBuilder(t)
	b.SetGuestCount(20)
	b.SetItemQuantity("Superboard", 2)
	b.ToggleItem("Cheesy Potatoes")

	body := testhelpers.RenderComponent(t, templates.MenuBuilder(b.View()))

	testhelpers.AssertHTMLContains(t, body,
		`class="btn btn-ghost btn-small menu-toggle is-selected" aria-pressed="true" data-item-name="Cheesy Potatoes">Cheesy Potatoes<span class="badge per-guest-badge">per guest</span></button>`,
		`<span class="badge per-guest-badge is-hidden">per guest</span>`,
		`<span class="qty-value">2</span>`,
		`value="20"`,
		`Estimated food total: $450`,
		`Boards/stations: $300`,
		`Selections: ~$3 per guest × 20 = $60`,
		`- Superboard x2 ($150 each)`,
	)
}

func TestMenuBuilder_SwitchMenu(t *testing.T) {
	b := testhelpers.NewTestBuilder(t)
	b.SelectMenu("picnic")

	body := testhelpers.RenderComponent(t, templates.MenuBuilder(b.View()))
	testhelpers.AssertHTMLContains(t, body,
		`aria-pressed="true" data-menu-id="picnic">Picnic-Style Packages</button>`,
		`<h3>Proteins</h3>`,
		`data-item-name="Hot Dogs">Hot Dogs`,
	)
	testhelpers.AssertHTMLNotContains(t, body, `<h3>Boards &amp; Stations</h3>`)
}

func TestMenuBuilder_EmptyCatalog(t *testing.T) {
	b := services.NewBuilder(nil, nil)
	body := testhelpers.RenderComponent(t, templates.MenuBuilder(b.View()))

	testhelpers.AssertHTMLContains(t, body, `<p class="note">Menu selections are coming soon.</p>`)
	testhelpers.AssertHTMLNotContains(t, body, "private-guest-count", "party-menu-summary")
}

func TestAddons_Toggles(t *testing.T) {
	doc := catalog.Priced(catalog.Default(), services.DefaultPricingConfig())
	b := services.NewBuilder(doc.Menus, testhelpers.TestAddons())
	b.ToggleAddon("wine")

	body := testhelpers.RenderComponent(t, templates.Addons(b.View().Addons))
	testhelpers.AssertHTMLContains(t, body,
		`<h3>Beverage add-ons</h3>`,
		`class="btn btn-ghost btn-small menu-toggle" aria-pressed="false" data-addon-id="soda">Soda &amp; Iced Tea</button>`,
		`class="btn btn-ghost btn-small menu-toggle is-selected" aria-pressed="true" data-addon-id="wine">House Wine</button>`,
	)
	testhelpers.AssertHTMLNotContains(t, body, "quoted separately")
}

func TestEstimatePanel_Empty(t *testing.T) {
	body := testhelpers.RenderComponent(t, templates.EstimatePanel(services.Estimate{GuestCount: 10}))
	testhelpers.AssertHTMLContains(t, body,
		`<p class="note" data-private-menu="estimate-fixed"></p>`,
		`<p class="note" data-private-menu="estimate-perguest"></p>`,
	)
}

func TestMenuSummaryField_Escapes(t *testing.T) {
	body := testhelpers.RenderComponent(t, templates.MenuSummaryField(`<script>alert("x")</script>`))
	testhelpers.AssertHTMLContains(t, body, `&lt;script&gt;`)
	testhelpers.AssertHTMLNotContains(t, body, "<script>")
}

func TestMenuSections_Escapes(t *testing.T) {
	sections := []services.SectionView{{
		Title: `Chef's <Picks>`,
		Items: []services.ItemView{{Name: `"Quoted" & Co`}},
	}}
	body := testhelpers.RenderComponent(t, templates.MenuSections(sections))
	testhelpers.AssertHTMLContains(t, body,
		`<h3>Chef&#39;s &lt;Picks&gt;</h3>`,
		`data-item-name="&#34;Quoted&#34; &amp; Co">&#34;Quoted&#34; &amp; Co</button>`,
	)
}
