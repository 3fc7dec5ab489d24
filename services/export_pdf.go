package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF renders a quote as a one-table PDF using maroto/v2.
func GenerateQuotePDF(data QuoteExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteTableHeader(m)
	for _, r := range data.Rows {
		addQuoteRow(m, r)
	}
	addQuoteSummary(m, data)
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addQuoteHeader(m core.Maroto, data QuoteExport) {
	grey := &props.Color{Red: 80, Green: 80, Blue: 80}

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(
				text.New("Reference: "+data.ReferenceNumber, props.Text{Size: 9, Align: align.Left, Color: grey}),
			),
			col.New(6).Add(
				text.New("Date: "+data.CreatedDate, props.Text{Size: 9, Align: align.Right, Color: grey}),
			),
		),
		row.New(7).Add(
			col.New(6).Add(
				text.New("Menu: "+data.MenuLabel, props.Text{Size: 9, Align: align.Left, Color: grey}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Guests: %d", data.GuestCount), props.Text{Size: 9, Align: align.Right, Color: grey}),
			),
		),
	)
	m.AddRows(row.New(4))
}

func addQuoteTableHeader(m core.Maroto) {
	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	m.AddRows(
		row.New(8).Add(
			col.New(3).Add(text.New("Section", headerTextLeft)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Item", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Line Total", headerText)).WithStyle(&headerCell),
		),
	)
}

func addQuoteRow(m core.Maroto, r QuoteRow) {
	base := props.Text{Size: 8, Align: align.Center}
	left := base
	left.Align = align.Left
	right := base
	right.Align = align.Right

	unit, total := "—", "—"
	if r.Priced {
		unit = FormatUSD(r.UnitPrice) + " " + r.Basis
		total = FormatUSD(r.LineTotal)
	}
	m.AddRows(
		row.New(7).Add(
			col.New(3).Add(text.New(r.Section, left)),
			col.New(4).Add(text.New(r.Description, left)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Qty), base)),
			col.New(2).Add(text.New(unit, right)),
			col.New(2).Add(text.New(total, right)),
		),
	)
}

func addQuoteSummary(m core.Maroto, data QuoteExport) {
	m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	value := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	lines := [][2]string{
		{"Boards/Stations", FormatUSD(data.FixedTotal)},
		{fmt.Sprintf("Per guest (%s x %d)", FormatUSD(data.PerGuestRate), data.GuestCount), FormatUSD(data.PerGuestTotal)},
		{"Subtotal", FormatUSD(data.Subtotal)},
		{data.TaxLabel, FormatUSD(data.TaxAmount)},
		{data.GratuityLabel, FormatUSD(data.GratuityAmount)},
		{"Estimated Total", FormatUSD(data.Total)},
	}
	for _, line := range lines {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(line[0], label)).WithStyle(summaryCell),
				col.New(4).Add(text.New(line[1], value)).WithStyle(summaryCell),
			),
		)
	}
}

func addQuoteFooter(m core.Maroto, data QuoteExport) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Estimate only. Generated on %s.", data.CreatedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
