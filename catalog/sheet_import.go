package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"

	"privateevents/services"
)

// defaultSection titles items whose Section cell is blank.
const defaultSection = "Menu"

// RowError is a single field-level problem on one sheet row.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult summarises a cost sheet import. Rows with errors are left out
// of the imported document.
type ImportResult struct {
	FileName     string     `json:"file_name"`
	TotalRows    int        `json:"total_rows"`
	ValidRows    int        `json:"valid_rows"`
	ErrorRows    int        `json:"error_rows"`
	Errors       []RowError `json:"errors"`
	Unrecognized []string   `json:"unrecognized_columns,omitempty"`
}

// ImportSheetFile reads a .csv or .xlsx cost sheet from disk.
func ImportSheetFile(path string) (Document, *ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, nil, fmt.Errorf("open cost sheet: %w", err)
	}
	defer f.Close()
	return ImportSheet(f, filepath.Base(path))
}

// ImportSheet parses a kitchen cost sheet into a raw catalog document. The
// file format is picked from fileName's extension.
func ImportSheet(r io.Reader, fileName string) (Document, *ImportResult, error) {
	var headers []string
	var dataRows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		headers, dataRows, err = parseCSV(r)
	case ".xlsx":
		headers, dataRows, err = parseExcel(r)
	default:
		return Document{}, nil, fmt.Errorf("unsupported file format %q: must be .csv or .xlsx", fileName)
	}
	if err != nil {
		return Document{}, nil, err
	}

	fields := CostSheetFields()
	columnKeys, unrecognized := mapHeadersToFields(headers, fields)
	present := make(map[string]bool, len(columnKeys))
	for _, key := range columnKeys {
		present[key] = true
	}
	for _, f := range fields {
		if f.AlwaysRequired && !present[f.Key] {
			return Document{}, nil, fmt.Errorf("missing required column %q", f.Label)
		}
	}

	labels := fieldLabels(fields)
	result := &ImportResult{FileName: fileName, Unrecognized: unrecognized}
	asm := newAssembler()

	for idx, row := range dataRows {
		rowNum := idx + 2
		data := make(map[string]string, len(columnKeys))
		blank := true
		for col, key := range columnKeys {
			if key == "" || col >= len(row) {
				continue
			}
			value := strings.TrimSpace(row[col])
			data[key] = value
			if value != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		result.TotalRows++

		item, rowErrors := parseSheetRow(rowNum, data, fields, labels)
		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
			result.ErrorRows++
			continue
		}
		result.ValidRows++
		asm.add(data["menu_id"], data["menu"], data["section"], item)
	}

	return Document{Menus: asm.menus}, result, nil
}

// parseCSV reads a CSV file and returns headers and data rows.
func parseCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return rows[0], rows[1:], nil
}

// parseExcel reads headers and data rows from the first sheet of an xlsx file.
func parseExcel(r io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return rows[0], rows[1:], nil
}

// mapHeadersToFields maps column headers to field keys, one per column. Unknown
// columns map to "" and are returned separately.
func mapHeadersToFields(headers []string, fields []SheetField) ([]string, []string) {
	labelToKey := make(map[string]string, len(fields))
	for _, f := range fields {
		labelToKey[strings.ToLower(f.Label)] = f.Key
	}

	mapped := make([]string, len(headers))
	var unrecognized []string
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		// Template headers mark required columns with a trailing " *".
		norm = strings.TrimSpace(strings.TrimSuffix(norm, "*"))
		if key, ok := labelToKey[norm]; ok {
			mapped[i] = key
		} else if norm != "" {
			unrecognized = append(unrecognized, h)
		}
	}
	return mapped, unrecognized
}

func parseSheetRow(rowNum int, data map[string]string, fields []SheetField, labels map[string]string) (services.MenuItem, []RowError) {
	var errs []RowError
	fail := func(key, format string, args ...any) {
		errs = append(errs, RowError{Row: rowNum, Field: labels[key], Message: fmt.Sprintf(format, args...)})
	}

	for _, f := range fields {
		if f.AlwaysRequired && data[f.Key] == "" {
			fail(f.Key, "%s is required", f.Label)
		}
	}

	item := services.MenuItem{
		Name:     data["item"],
		Category: strings.ToLower(data["category"]),
	}

	if v := data["pricing_type"]; v != "" {
		pt, ok := parsePricingType(v)
		if !ok {
			fail("pricing_type", "Pricing Type must be fixed or per_person, got %q", v)
		}
		item.PricingType = pt
	}

	amounts := make(map[string]decimal.NullDecimal, len(amountKeys))
	for _, key := range amountKeys {
		v := data[key]
		if v == "" {
			continue
		}
		amount := services.ParseAmount(strings.TrimPrefix(v, "$"))
		switch {
		case !amount.Valid:
			fail(key, "%s must be a number, got %q", labels[key], v)
		case amount.Decimal.IsNegative():
			fail(key, "%s must not be negative", labels[key])
		default:
			amounts[key] = amount
		}
	}
	item.FixedPrice = amounts["fixed_price"]
	item.PerPersonPrice = amounts["per_person_price"]
	item.CogsPerPerson = amounts["cogs_per_person"]
	item.IngredientCostPerServing = amounts["ingredient_cost_per_serving"]
	item.CogsPerBatch = amounts["cogs_per_batch"]
	item.ServingsPerBatch = amounts["servings_per_batch"]

	if v := data["allow_quantity"]; v != "" {
		allow, ok := parseYesNo(v)
		if !ok {
			fail("allow_quantity", "Allow Quantity must be Yes or No, got %q", v)
		}
		item.AllowQuantity = allow
	}

	if v := data["max_qty"]; v != "" {
		qty := services.ParseAmount(v)
		if !qty.Valid || qty.Decimal.IsNegative() || !qty.Decimal.Equal(qty.Decimal.Truncate(0)) {
			fail("max_qty", "Max Qty must be a whole number, got %q", v)
		} else {
			item.MaxQty = int(qty.Decimal.IntPart())
		}
	}

	return item, errs
}

func parsePricingType(v string) (services.PricingType, bool) {
	norm := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(v))
	switch services.PricingType(norm) {
	case services.PricingFixed:
		return services.PricingFixed, true
	case services.PricingPerPerson, "perperson", "per_guest":
		return services.PricingPerPerson, true
	}
	return "", false
}

func parseYesNo(v string) (bool, bool) {
	switch strings.ToLower(v) {
	case "yes", "y":
		return true, true
	case "no", "n":
		return false, true
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, false
	}
	return b, true
}

// assembler groups sheet rows into menus and sections in first-seen order.
type assembler struct {
	menus    []services.Menu
	menuIdx  map[string]int
	sections []map[string]int
}

func newAssembler() *assembler {
	return &assembler{menuIdx: make(map[string]int)}
}

func (a *assembler) add(menuID, label, section string, item services.MenuItem) {
	mi, ok := a.menuIdx[menuID]
	if !ok {
		mi = len(a.menus)
		a.menuIdx[menuID] = mi
		a.menus = append(a.menus, services.Menu{ID: menuID})
		a.sections = append(a.sections, make(map[string]int))
	}
	menu := &a.menus[mi]
	if menu.Label == "" && label != "" {
		menu.Label = label
	}

	if section == "" {
		section = defaultSection
	}
	si, ok := a.sections[mi][section]
	if !ok {
		si = len(menu.Sections)
		a.sections[mi][section] = si
		menu.Sections = append(menu.Sections, services.MenuSection{Title: section})
	}
	menu.Sections[si].Items = append(menu.Sections[si].Items, item)
}

// GenerateErrorReport creates an .xlsx listing every row error.
func GenerateErrorReport(errs []RowError) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Errors"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC2626"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    cellBorders(),
	})

	f.SetCellValue(sheet, "A1", "Row #")
	f.SetCellValue(sheet, "B1", "Field")
	f.SetCellValue(sheet, "C1", "Error")
	f.SetCellStyle(sheet, "A1", "C1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 26)
	f.SetColWidth(sheet, "C", "C", 60)

	for i, e := range errs {
		row := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheet, "A"+row, e.Row)
		f.SetCellValue(sheet, "B"+row, e.Field)
		f.SetCellValue(sheet, "C"+row, e.Message)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write error report: %w", err)
	}
	return buf.Bytes(), nil
}
