package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// PricingType selects which sell price of an item is authoritative.
type PricingType string

const (
	PricingFixed     PricingType = "fixed"
	PricingPerPerson PricingType = "per_person"
)

// Menu is one menu variant a guest can build from (brunch, picnic, ...).
type Menu struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Sections []MenuSection `json:"sections"`
}

// MenuSection groups items; section and item order is display and summary order.
type MenuSection struct {
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}

// MenuItem is a single selectable offering. Cost fields are kitchen-only and
// never rendered to guests.
type MenuItem struct {
	Name                     string
	PricingType              PricingType
	FixedPrice               decimal.NullDecimal
	PerPersonPrice           decimal.NullDecimal
	CogsPerPerson            decimal.NullDecimal
	IngredientCostPerServing decimal.NullDecimal
	CogsPerBatch             decimal.NullDecimal
	ServingsPerBatch         decimal.NullDecimal
	Category                 string
	AllowQuantity            bool
	MaxQty                   int // 0 means unbounded
}

// BeverageAddon is an optional beverage line, selected independently of the menu.
type BeverageAddon struct {
	ID             string
	Label          string
	Name           string
	FixedPrice     decimal.NullDecimal
	PerPersonPrice decimal.NullDecimal
	AllowQuantity  bool
	MaxQty         int
}

// Key identifies the addon in the selection map.
func (a BeverageAddon) Key() string {
	switch {
	case a.ID != "":
		return a.ID
	case a.Label != "":
		return a.Label
	}
	return a.Name
}

// DisplayName is the label shown to guests.
func (a BeverageAddon) DisplayName() string {
	switch {
	case a.Label != "":
		return a.Label
	case a.Name != "":
		return a.Name
	}
	return a.ID
}

// ResolvedPricingType returns the explicit pricing type, else fixed when a fixed
// price is set, else per-person. Unrecognised explicit types count as unset.
func (it MenuItem) ResolvedPricingType() PricingType {
	switch it.PricingType {
	case PricingFixed, PricingPerPerson:
		return it.PricingType
	}
	if it.FixedPrice.Valid {
		return PricingFixed
	}
	return PricingPerPerson
}

// IngredientCost is the per-person raw cost, falling back to the per-serving cost.
func (it MenuItem) IngredientCost() decimal.NullDecimal {
	if it.CogsPerPerson.Valid {
		return it.CogsPerPerson
	}
	return it.IngredientCostPerServing
}

// BatchCost is the raw cost of one fixed-price batch: the explicit batch cost,
// else ingredient cost times servings.
func (it MenuItem) BatchCost() decimal.NullDecimal {
	if it.CogsPerBatch.Valid {
		return it.CogsPerBatch
	}
	cost := it.IngredientCost()
	if cost.Valid && it.ServingsPerBatch.Valid {
		return decimal.NewNullDecimal(cost.Decimal.Mul(it.ServingsPerBatch.Decimal))
	}
	return decimal.NullDecimal{}
}

// SellPrice returns the authoritative sell price and whether it is known.
func (it MenuItem) SellPrice() (decimal.Decimal, bool) {
	price := it.PerPersonPrice
	if it.ResolvedPricingType() == PricingFixed {
		price = it.FixedPrice
	}
	return price.Decimal, price.Valid
}

type menuItemJSON struct {
	Name                     string       `json:"name"`
	PricingType              PricingType  `json:"pricing_type,omitempty"`
	FixedPrice               *json.Number `json:"fixed_price,omitempty"`
	PerPersonPrice           *json.Number `json:"per_person_price,omitempty"`
	CogsPerPerson            *json.Number `json:"cogs_per_person,omitempty"`
	IngredientCostPerServing *json.Number `json:"ingredient_cost_per_serving,omitempty"`
	CogsPerBatch             *json.Number `json:"cogs_per_batch,omitempty"`
	ServingsPerBatch         *json.Number `json:"servings_per_batch,omitempty"`
	Category                 string       `json:"category,omitempty"`
	AllowQuantity            bool         `json:"allow_quantity,omitempty"`
	MaxQty                   int          `json:"max_qty,omitempty"`
}

// MarshalJSON writes the data-file shape, omitting absent amounts.
func (it MenuItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(menuItemJSON{
		Name:                     it.Name,
		PricingType:              it.PricingType,
		FixedPrice:               jsonNumber(it.FixedPrice),
		PerPersonPrice:           jsonNumber(it.PerPersonPrice),
		CogsPerPerson:            jsonNumber(it.CogsPerPerson),
		IngredientCostPerServing: jsonNumber(it.IngredientCostPerServing),
		CogsPerBatch:             jsonNumber(it.CogsPerBatch),
		ServingsPerBatch:         jsonNumber(it.ServingsPerBatch),
		Category:                 it.Category,
		AllowQuantity:            it.AllowQuantity,
		MaxQty:                   it.MaxQty,
	})
}

// UnmarshalJSON accepts an object in the data-file shape or a bare string name.
// Non-numeric amounts decode as absent rather than failing the document.
func (it *MenuItem) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return fmt.Errorf("decode menu item name: %w", err)
		}
		*it = MenuItem{Name: name}
		return nil
	}

	raw, err := decodeObject(trimmed)
	if err != nil {
		return fmt.Errorf("decode menu item: %w", err)
	}
	pricingType := ParseString(raw["pricing_type"])
	if pricingType == "" {
		pricingType = ParseString(raw["pricingType"])
	}
	*it = MenuItem{
		Name:                     firstString(raw, "name", "label", "title"),
		PricingType:              PricingType(pricingType),
		FixedPrice:               ParseAmount(raw["fixed_price"]),
		PerPersonPrice:           ParseAmount(raw["per_person_price"]),
		CogsPerPerson:            ParseAmount(raw["cogs_per_person"]),
		IngredientCostPerServing: ParseAmount(raw["ingredient_cost_per_serving"]),
		CogsPerBatch:             ParseAmount(raw["cogs_per_batch"]),
		ServingsPerBatch:         ParseAmount(raw["servings_per_batch"]),
		Category:                 ParseString(raw["category"]),
		AllowQuantity:            raw["allow_quantity"] == true,
		MaxQty:                   parseMaxQty(raw["max_qty"]),
	}
	return nil
}

type beverageAddonJSON struct {
	ID             string       `json:"id,omitempty"`
	Label          string       `json:"label,omitempty"`
	Name           string       `json:"name,omitempty"`
	FixedPrice     *json.Number `json:"fixed_price,omitempty"`
	PerPersonPrice *json.Number `json:"per_person_price,omitempty"`
	AllowQuantity  bool         `json:"allow_quantity,omitempty"`
	MaxQty         int          `json:"max_qty,omitempty"`
}

func (a BeverageAddon) MarshalJSON() ([]byte, error) {
	return json.Marshal(beverageAddonJSON{
		ID:             a.ID,
		Label:          a.Label,
		Name:           a.Name,
		FixedPrice:     jsonNumber(a.FixedPrice),
		PerPersonPrice: jsonNumber(a.PerPersonPrice),
		AllowQuantity:  a.AllowQuantity,
		MaxQty:         a.MaxQty,
	})
}

func (a *BeverageAddon) UnmarshalJSON(data []byte) error {
	raw, err := decodeObject(bytes.TrimSpace(data))
	if err != nil {
		return fmt.Errorf("decode beverage addon: %w", err)
	}
	*a = BeverageAddon{
		ID:             ParseString(raw["id"]),
		Label:          ParseString(raw["label"]),
		Name:           ParseString(raw["name"]),
		FixedPrice:     ParseAmount(raw["fixed_price"]),
		PerPersonPrice: ParseAmount(raw["per_person_price"]),
		AllowQuantity:  raw["allow_quantity"] == true,
		MaxQty:         parseMaxQty(raw["max_qty"]),
	}
	return nil
}

// decodeObject decodes a JSON object keeping numbers as json.Number. Anything
// that is not an object yields an empty map.
func decodeObject(data []byte) (map[string]any, error) {
	if len(data) == 0 || data[0] != '{' {
		return map[string]any{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func firstString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := ParseString(raw[key]); s != "" {
			return s
		}
	}
	return ""
}

func parseMaxQty(v any) int {
	amount := ParseAmount(v)
	if !amount.Valid || !amount.Decimal.IsPositive() {
		return 0
	}
	return int(amount.Decimal.IntPart())
}

func jsonNumber(v decimal.NullDecimal) *json.Number {
	if !v.Valid {
		return nil
	}
	n := json.Number(v.Decimal.String())
	return &n
}

func cloneMenus(menus []Menu) []Menu {
	if menus == nil {
		return nil
	}
	out := make([]Menu, len(menus))
	for i, menu := range menus {
		out[i] = Menu{ID: menu.ID, Label: menu.Label}
		if menu.Sections == nil {
			continue
		}
		out[i].Sections = make([]MenuSection, len(menu.Sections))
		for j, section := range menu.Sections {
			out[i].Sections[j] = MenuSection{Title: section.Title}
			if section.Items != nil {
				out[i].Sections[j].Items = append([]MenuItem(nil), section.Items...)
			}
		}
	}
	return out
}
