package catalog

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const itemsSheet = "Items"

// GenerateSheetTemplate creates a blank cost sheet for ImportSheet.
func GenerateSheetTemplate() ([]byte, error) {
	fields := CostSheetFields()

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, itemsSheet)

	requiredHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    cellBorders(),
	})
	optionalHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#6B7280"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    cellBorders(),
	})

	columns := columnLetters(len(fields))
	for i, field := range fields {
		cell := columns[i] + "1"

		header := field.Label
		style := optionalHeaderStyle
		if field.AlwaysRequired {
			header += " *"
			style = requiredHeaderStyle
		}
		f.SetCellValue(itemsSheet, cell, header)
		f.SetCellStyle(itemsSheet, cell, cell, style)

		width := float64(len(field.Label)) * 1.3
		if width < 15 {
			width = 15
		}
		f.SetColWidth(itemsSheet, columns[i], columns[i], width)
	}

	for i, field := range fields {
		var options []string
		switch field.Key {
		case "pricing_type":
			options = PricingTypeOptions
		case "allow_quantity":
			options = YesNoOptions
		case "category":
			options = CategoryOptions
		default:
			continue
		}
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s2:%s1048576", columns[i], columns[i])
		if err := dv.SetDropList(options); err != nil {
			return nil, fmt.Errorf("%s dropdown: %w", field.Label, err)
		}
		if err := f.AddDataValidation(itemsSheet, dv); err != nil {
			return nil, fmt.Errorf("%s dropdown: %w", field.Label, err)
		}
	}

	f.SetPanes(itemsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	addInstructionsSheet(f, fields)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write cost sheet template: %w", err)
	}
	return buf.Bytes(), nil
}

// addInstructionsSheet adds a hidden sheet describing every column.
func addInstructionsSheet(f *excelize.File, fields []SheetField) {
	sheet := "Instructions"
	f.NewSheet(sheet)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E5E7EB"}, Pattern: 1},
	})

	f.SetCellValue(sheet, "A1", "Menu Cost Sheet - Instructions")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	f.SetCellValue(sheet, "A2", "One row per item. Rows sharing a Menu ID form one menu, in sheet order.")

	headers := []string{"Field Name", "Required?", "Format Rule", "Description", "Example"}
	cols := columnLetters(len(headers))
	for i, h := range headers {
		cell := cols[i] + "3"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, field := range fields {
		row := fmt.Sprintf("%d", i+4)
		required := "Optional"
		if field.AlwaysRequired {
			required = "Required"
		}
		f.SetCellValue(sheet, cols[0]+row, field.Label)
		f.SetCellValue(sheet, cols[1]+row, required)
		f.SetCellValue(sheet, cols[2]+row, field.FormatRule)
		f.SetCellValue(sheet, cols[3]+row, field.Description)
		f.SetCellValue(sheet, cols[4]+row, field.ExampleValue)
	}

	widths := []float64{26, 12, 34, 55, 14}
	for i, w := range widths {
		f.SetColWidth(sheet, cols[i], cols[i], w)
	}

	f.SetSheetVisible(sheet, false)
}

// columnLetters returns Excel column letters for n columns: A, B, ... Z, AA ...
func columnLetters(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i], _ = excelize.ColumnNumberToName(i + 1)
	}
	return cols
}

func cellBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
