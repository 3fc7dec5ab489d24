package catalog

// SheetField describes one column of the kitchen cost sheet.
type SheetField struct {
	Key            string
	Label          string
	Description    string
	FormatRule     string
	ExampleValue   string
	AlwaysRequired bool
}

// PricingTypeOptions feeds the Pricing Type dropdown.
var PricingTypeOptions = []string{"fixed", "per_person"}

// YesNoOptions feeds the Allow Quantity dropdown.
var YesNoOptions = []string{"Yes", "No"}

// CategoryOptions lists the categories that carry a per-person price floor.
var CategoryOptions = []string{"app", "breakfast", "entree", "salad", "side"}

// amountKeys are the sheet columns holding money or serving amounts.
var amountKeys = []string{
	"fixed_price",
	"per_person_price",
	"cogs_per_person",
	"ingredient_cost_per_serving",
	"cogs_per_batch",
	"servings_per_batch",
}

// CostSheetFields returns the cost sheet columns in template order.
func CostSheetFields() []SheetField {
	return []SheetField{
		{Key: "menu_id", Label: "Menu ID", Description: "Identifier of the menu the item belongs to", FormatRule: "Short lowercase id, no spaces", ExampleValue: "brunch", AlwaysRequired: true},
		{Key: "menu", Label: "Menu", Description: "Menu name shown to guests; the first non-blank value per menu wins", FormatRule: "Free text", ExampleValue: "Brunch"},
		{Key: "section", Label: "Section", Description: "Section heading the item is listed under", FormatRule: "Free text", ExampleValue: "Boards"},
		{Key: "item", Label: "Item", Description: "Item name shown to guests", FormatRule: "Free text", ExampleValue: "Superboard", AlwaysRequired: true},
		{Key: "pricing_type", Label: "Pricing Type", Description: "Whether the item is priced per order or per guest", FormatRule: "fixed or per_person", ExampleValue: "fixed"},
		{Key: "fixed_price", Label: "Fixed Price", Description: "Sell price per order; leave blank to derive from cost", FormatRule: "Number, no currency sign", ExampleValue: "150"},
		{Key: "per_person_price", Label: "Per Person Price", Description: "Sell price per guest; leave blank to derive from cost", FormatRule: "Number, no currency sign", ExampleValue: "8"},
		{Key: "cogs_per_person", Label: "Cogs Per Person", Description: "Raw food cost of one serving", FormatRule: "Number", ExampleValue: "1.85"},
		{Key: "ingredient_cost_per_serving", Label: "Ingredient Cost Per Serving", Description: "Used when Cogs Per Person is blank", FormatRule: "Number", ExampleValue: "1.50"},
		{Key: "cogs_per_batch", Label: "Cogs Per Batch", Description: "Raw food cost of one board or tray", FormatRule: "Number", ExampleValue: "95"},
		{Key: "servings_per_batch", Label: "Servings Per Batch", Description: "Guests served by one board or tray", FormatRule: "Number", ExampleValue: "16"},
		{Key: "category", Label: "Category", Description: "Sets the per-person price floor", FormatRule: "app, breakfast, entree, salad or side", ExampleValue: "entree"},
		{Key: "allow_quantity", Label: "Allow Quantity", Description: "Whether guests can order more than one", FormatRule: "Yes or No", ExampleValue: "Yes"},
		{Key: "max_qty", Label: "Max Qty", Description: "Highest quantity a guest can order; blank for no limit", FormatRule: "Whole number", ExampleValue: "4"},
	}
}

func fieldLabels(fields []SheetField) map[string]string {
	labels := make(map[string]string, len(fields))
	for _, f := range fields {
		labels[f.Key] = f.Label
	}
	return labels
}
