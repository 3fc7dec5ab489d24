// Package templates renders the private-event menu builder as HTML.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"privateevents/services"
)

// html collects markup and keeps the first write error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

func (h *html) text(s string) { h.raw(templ.EscapeString(s)) }

func pressed(selected bool) string {
	if selected {
		return "true"
	}
	return "false"
}

func classes(names ...string) string {
	var kept []string
	for _, n := range names {
		if n != "" {
			kept = append(kept, n)
		}
	}
	return strings.Join(kept, " ")
}

func when(ok bool, class string) string {
	if ok {
		return class
	}
	return ""
}

// MenuTypes renders one toggle button per menu.
func MenuTypes(menus []services.MenuOption) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div class="menu-builder-buttons" data-private-menu="types">`)
		for _, m := range menus {
			h.raw(`<button type="button" class="`, classes("btn btn-secondary btn-small menu-toggle", when(m.Selected, "is-selected")),
				`" aria-pressed="`, pressed(m.Selected), `" data-menu-id="`)
			h.text(m.ID)
			h.raw(`">`)
			h.text(m.Label)
			h.raw(`</button>`)
		}
		h.raw(`</div>`)
		return h.err
	})
}

// MenuSections renders the items of the active menu. Quantity items get a
// -/+ control, the rest are toggle buttons.
func MenuSections(sections []services.SectionView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div data-private-menu="sections">`)
		for _, s := range sections {
			h.raw(`<div class="menu-builder-section">`)
			if s.Title != "" {
				h.raw(`<h3>`)
				h.text(s.Title)
				h.raw(`</h3>`)
			}
			h.raw(`<div class="menu-builder-buttons">`)
			for _, item := range s.Items {
				if item.AllowQuantity {
					quantityControl(h, item)
				} else {
					toggleButton(h, item)
				}
			}
			h.raw(`</div></div>`)
		}
		h.raw(`</div>`)
		return h.err
	})
}

func perGuestBadge(h *html, item services.ItemView) {
	if !item.PerGuest {
		return
	}
	h.raw(`<span class="`, classes("badge per-guest-badge", when(!item.Selected(), "is-hidden")), `">per guest</span>`)
}

func toggleButton(h *html, item services.ItemView) {
	h.raw(`<button type="button" class="`, classes("btn btn-ghost btn-small menu-toggle", when(item.Selected(), "is-selected")),
		`" aria-pressed="`, pressed(item.Selected()), `" data-item-name="`)
	h.text(item.Name)
	h.raw(`">`)
	h.text(item.Name)
	perGuestBadge(h, item)
	h.raw(`</button>`)
}

func quantityControl(h *html, item services.ItemView) {
	h.raw(`<div class="qty-control" data-item-name="`)
	h.text(item.Name)
	if item.MaxQty > 0 {
		h.raw(fmt.Sprintf(`" data-max-qty="%d`, item.MaxQty))
	}
	h.raw(`"><button type="button" class="btn btn-ghost btn-small">`)
	h.text(item.Name)
	perGuestBadge(h, item)
	h.raw(`</button>`,
		`<button type="button" class="btn btn-secondary btn-small" data-qty-step="-1">–</button>`,
		fmt.Sprintf(`<span class="qty-value">%d</span>`, item.Qty),
		`<button type="button" class="btn btn-secondary btn-small" data-qty-step="1">+</button>`,
		`</div>`)
}

// Addons renders the beverage toggles, or the quoted-separately note when the
// catalog has none.
func Addons(addons []services.AddonView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div data-private-menu="addons">`)
		if len(addons) == 0 {
			h.raw(`<p class="note">Beverage service is quoted separately. Ask about bottle and case options.</p></div>`)
			return h.err
		}
		h.raw(`<h3>Beverage add-ons</h3><div class="menu-builder-buttons">`)
		for _, a := range addons {
			h.raw(`<button type="button" class="`, classes("btn btn-ghost btn-small menu-toggle", when(a.Selected, "is-selected")),
				`" aria-pressed="`, pressed(a.Selected), `" data-addon-id="`)
			h.text(a.Key)
			h.raw(`">`)
			h.text(a.Label)
			h.raw(`</button>`)
		}
		h.raw(`</div></div>`)
		return h.err
	})
}

// EstimatePanel renders the live totals.
func EstimatePanel(est services.Estimate) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div class="menu-builder-estimate">`, `<p data-private-menu="estimate">`)
		h.text("Estimated food total: " + services.FormatUSD(est.Total))
		h.raw(`</p><p class="note" data-private-menu="estimate-fixed">`)
		if est.FixedSellTotal.IsPositive() {
			h.text("Boards/stations: " + services.FormatUSD(est.FixedSellTotal))
		}
		h.raw(`</p><p class="note" data-private-menu="estimate-perguest">`)
		if est.PerPersonSellTotal.IsPositive() {
			h.text(fmt.Sprintf("Selections: ~%s per guest × %d = %s",
				services.FormatUSD(est.PerPersonSellTotal), est.GuestCount, services.FormatUSD(est.PerGuestTotal())))
		}
		h.raw(`</p></div>`)
		return h.err
	})
}

// MenuSummaryField renders the read-only textarea submitted with the enquiry.
func MenuSummaryField(summary string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<textarea id="party-menu-summary" name="menu_summary" rows="12" readonly>`)
		h.text(summary)
		h.raw(`</textarea>`)
		return h.err
	})
}

// MenuBuilder renders the whole builder for one snapshot.
func MenuBuilder(view services.BuilderView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div id="private-menu-builder">`)
		if len(view.Menus) == 0 {
			h.raw(`<p class="note">Menu selections are coming soon.</p></div>`)
			return h.err
		}
		if h.err != nil {
			return h.err
		}
		if err := MenuTypes(view.Menus).Render(ctx, w); err != nil {
			return err
		}
		h.raw(fmt.Sprintf(`<label for="private-guest-count">Guests</label>`+
			`<input id="private-guest-count" name="guest_count" type="number" min="%d" step="1" value="%d">`,
			view.MinGuestCount, view.GuestCount))
		if h.err != nil {
			return h.err
		}
		for _, c := range []templ.Component{
			MenuSections(view.Sections),
			Addons(view.Addons),
			EstimatePanel(view.Quote.Estimate),
			MenuSummaryField(view.Quote.Summary),
		} {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw(`</div>`)
		return h.err
	})
}
