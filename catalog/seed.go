// Package catalog holds the house menu catalog and loads catalogs from JSON.
package catalog

import (
	"github.com/shopspring/decimal"

	"privateevents/services"
)

// ── Commodity costs ─────────────────────────────────────────────────────

// CommodityCosts are raw Northwest Ohio food costs (COGS) the per-person costs
// below are built from. Keys carry their unit.
var CommodityCosts = map[string]decimal.Decimal{
	"chicken_thighs_lb":    d("3.12"),
	"pork_butt_lb":         d("2.09"),
	"ground_beef_80_20_lb": d("4.75"),
	"russet_potatoes_lb":   d("0.65"),
	"mozzarella_lb":        d("3.46"),
	"cheddar_lb":           d("3.75"),
	"eggs_dozen":           d("2.96"),
	"all_purpose_flour_lb": d("0.48"),
	"pasta_lb":             d("1.25"),
	"marinara_per_serving": d("0.55"),
	"sandwich_buns_each":   d("0.18"),
	"broccoli_lb":          d("1.97"),
	"green_beans_lb":       d("1.80"),
	"carrots_lb":           d("0.91"),
	"brussels_sprouts_lb":  d("2.50"),
	"brisket_lb":           d("6.50"),
	"pork_chops_lb":        d("3.50"),
	"sausage_lb":           d("3.25"),
	"spring_mix_lb":        d("3.6"),
	"dressing_per_serving": d("0.35"),
	"butter_lb":            d("3.5"),
	"hotdog_each":          d("0.6"),
	"brat_each":            d("0.95"),
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func cost(key string) decimal.Decimal { return CommodityCosts[key] }

// portion is lbs of a commodity at costPerLb plus a flat adder for
// seasoning, sauce or packaging.
func portion(lbs string, costPerLb decimal.Decimal, extra decimal.Decimal) decimal.Decimal {
	return d(lbs).Mul(costPerLb).Add(extra)
}

func eggs(count int64) decimal.Decimal {
	return cost("eggs_dozen").Div(decimal.NewFromInt(12)).Mul(decimal.NewFromInt(count))
}

// ── Definition structs ──────────────────────────────────────────────────

type sectionDef struct {
	title string
	items []services.MenuItem
}

type menuDef struct {
	id       string
	label    string
	sections []sectionDef
}

// board is a fixed-price bundle. An empty price leaves it to be derived from the
// batch cost.
func board(name, price, batchCost, servings string, maxQty int) services.MenuItem {
	item := services.MenuItem{
		Name:          name,
		PricingType:   services.PricingFixed,
		AllowQuantity: maxQty > 0,
		MaxQty:        maxQty,
	}
	if price != "" {
		item.FixedPrice = decimal.NewNullDecimal(d(price))
	}
	if batchCost != "" {
		item.CogsPerBatch = decimal.NewNullDecimal(d(batchCost))
	}
	if servings != "" {
		item.ServingsPerBatch = decimal.NewNullDecimal(d(servings))
	}
	return item
}

func perPerson(name, category string, cogs decimal.Decimal) services.MenuItem {
	return services.MenuItem{
		Name:          name,
		PricingType:   services.PricingPerPerson,
		Category:      category,
		CogsPerPerson: decimal.NewNullDecimal(cogs),
	}
}

// ── Menus ───────────────────────────────────────────────────────────────

func menuDefs() []menuDef {
	buns := cost("sandwich_buns_each")
	return []menuDef{
		{
			id:    "brunch",
			label: "Brunch",
			sections: []sectionDef{
				{title: "Boards & Stations", items: []services.MenuItem{
					board("Superboard", "150", "95", "16", 4),
					board("Breakfast Sandwich Bar", "140", "100", "16", 4),
					board("Pancake Bar", "120", "80", "18", 4),
					board("Fruit & Veggie Board", "100", "70", "16", 4),
				}},
				{title: "Hot Favorites & Baked Items", items: []services.MenuItem{
					// 0.35 lb potatoes + 1.5 oz cheddar + dairy/butter
					perPerson("Cheesy Potatoes", "side",
						portion("0.35", cost("russet_potatoes_lb"), d("0.55")).Add(d("0.094").Mul(cost("cheddar_lb")))),
					perPerson("Sausage, Biscuits & Gravy", "entree", portion("0.3", cost("sausage_lb"), d("0.6"))),
					perPerson("French Toast Casserole", "breakfast",
						eggs(3).Add(cost("all_purpose_flour_lb").Mul(d("0.2"))).Add(d("0.75"))),
					perPerson("Muffin Tin Omelets", "breakfast", eggs(2).Add(d("0.6"))),
					perPerson("Muffins & Breakfast Breads", "breakfast", d("0.95")),
				}},
			},
		},
		{
			id:    "lunch_dinner",
			label: "Lunch & Dinner",
			sections: []sectionDef{
				{title: "Appetizers & Salads", items: []services.MenuItem{
					perPerson("Soup", "app", d("1.5")),
					perPerson("Antipasto", "app", d("3.1")),
					perPerson("Green or Seasonal Salad", "salad",
						portion("0.18", cost("spring_mix_lb"), cost("dressing_per_serving").Add(d("0.25")))),
					board("Superboard", "125", "110", "16", 4),
					perPerson("Stuffed Mushrooms", "app", d("2.6")),
					perPerson("Bruschetta", "app", d("1.6")),
					perPerson("Pasta Salad or Cole Slaw", "side", d("1.05")),
					board("Fruit & Veggie Board", "", "70", "16", 0),
				}},
				{title: "Main Courses", items: []services.MenuItem{
					perPerson("Baked Potato Bar", "entree", d("2.4")),
					perPerson("Macaroni & Cheese", "entree",
						cost("pasta_lb").Mul(d("0.18")).Add(cost("cheddar_lb").Mul(d("0.15"))).Add(d("0.55"))),
					perPerson("Chicken", "entree", portion("0.45", cost("chicken_thighs_lb"), d("0.45"))),
					perPerson("Pulled Pork", "entree", portion("0.45", cost("pork_butt_lb"), d("0.35"))),
					perPerson("Shredded Chicken", "entree", portion("0.4", cost("chicken_thighs_lb"), d("0.35"))),
					perPerson("Meatballs", "entree", portion("0.4", cost("ground_beef_80_20_lb"), d("0.45"))),
					perPerson("Lasagna", "entree",
						cost("pasta_lb").Mul(d("0.2")).Add(cost("mozzarella_lb").Mul(d("0.2"))).Add(cost("marinara_per_serving")).Add(d("0.55"))),
					perPerson("Spaghetti & Meatballs", "entree",
						cost("pasta_lb").Mul(d("0.18")).Add(cost("ground_beef_80_20_lb").Mul(d("0.15"))).Add(cost("marinara_per_serving")).Add(d("0.4"))),
					perPerson("Sloppy Joes", "entree", portion("0.3", cost("ground_beef_80_20_lb"), buns.Add(d("0.35")))),
					perPerson("Flatbreads", "entree", d("2.2")),
				}},
				{title: "Sides", items: []services.MenuItem{
					perPerson("Mashed or Cheesy Potatoes", "side", d("1.2")),
					perPerson("Brussels Sprouts", "side", portion("0.3", cost("brussels_sprouts_lb"), d("0.2"))),
					perPerson("Broccoli", "side", portion("0.3", cost("broccoli_lb"), d("0.15"))),
					perPerson("Green Beans", "side", portion("0.3", cost("green_beans_lb"), d("0.15"))),
					perPerson("Carrots", "side", portion("0.3", cost("carrots_lb"), d("0.15"))),
					perPerson("Seasonal Vegetables", "side", portion("0.3", d("1.8"), d("0.15"))),
					perPerson("Baked Beans", "side", d("0.8")),
					perPerson("Potato Salad", "side", d("0.9")),
					perPerson("Noodles", "side", d("0.75")),
				}},
			},
		},
		{
			id:    "picnic",
			label: "Picnic-Style Packages",
			sections: []sectionDef{
				{title: "Proteins", items: []services.MenuItem{
					perPerson("Hot Dogs", "entree", cost("hotdog_each").Add(buns).Add(d("0.2"))),
					perPerson("Brats", "entree", cost("brat_each").Add(buns).Add(d("0.25"))),
					perPerson("Burgers", "entree", portion("0.33", cost("ground_beef_80_20_lb"), buns.Add(d("0.35")))),
					perPerson("Chicken", "entree", portion("0.4", cost("chicken_thighs_lb"), d("0.35"))),
					perPerson("Brisket", "entree", portion("0.35", cost("brisket_lb"), d("0.35"))),
					perPerson("Pork Chops", "entree", portion("0.45", cost("pork_chops_lb"), d("0.3"))),
					perPerson("Steaks", "entree", portion("0.45", d("8.0"), d("0.35"))),
				}},
				{title: "Sides", items: []services.MenuItem{
					board("Fruit & Veggie Board", "100", "", "", 4),
					perPerson("Baked Beans", "side", d("0.8")),
					perPerson("Potato Salad", "side", d("0.9")),
					perPerson("Cole Slaw", "side", d("0.9")),
					perPerson("Pasta Salad", "side", d("1.1")),
					perPerson("Seasonal or Green Salad", "salad",
						portion("0.18", cost("spring_mix_lb"), cost("dressing_per_serving").Add(d("0.2")))),
				}},
			},
		},
	}
}

// DefaultMenus returns the raw house catalog. Prices not set here are derived
// from cost by services.DerivePrices.
func DefaultMenus() []services.Menu {
	defs := menuDefs()
	menus := make([]services.Menu, 0, len(defs))
	for _, md := range defs {
		menu := services.Menu{ID: md.id, Label: md.label}
		for _, sd := range md.sections {
			menu.Sections = append(menu.Sections, services.MenuSection{
				Title: sd.title,
				Items: append([]services.MenuItem(nil), sd.items...),
			})
		}
		menus = append(menus, menu)
	}
	return menus
}

// DefaultAddons returns the house beverage addons. None are offered yet;
// beverage service is quoted separately.
func DefaultAddons() []services.BeverageAddon {
	return nil
}
