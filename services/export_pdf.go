package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Brand palette. brandPrimary matches the page header gradient start.
var (
	brandPrimary = &props.Color{Red: 102, Green: 126, Blue: 234}
	brandDark    = &props.Color{Red: 60, Green: 60, Blue: 60}
	brandMuted   = &props.Color{Red: 120, Green: 120, Blue: 120}
	white        = &props.Color{Red: 255, Green: 255, Blue: 255}
	panelBg      = &props.Color{Red: 245, Green: 245, Blue: 250}
)

// GenerateQuotationPDF renders a quotation as a PDF using maroto/v2.
// Amounts carry the ASCII "Rs." marker because the built-in Latin-1
// fonts cannot draw the rupee sign. Rows are never split across pages;
// maroto moves a row that does not fit to the next page.
func GenerateQuotationPDF(data QuotationData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   brandMuted,
		}).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, data)
	addBusinessDetails(m, data)

	// --- Selected services, grouped by category ---
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New("SELECTED SERVICES", props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: brandPrimary,
				}),
			),
		),
	)
	for _, group := range data.Groups {
		addCategorySection(m, group)
	}

	addQuotationSummary(m, data)
	addAlbumPricing(m, data)
	addImportantNotes(m, data)
	addQuotationFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuotationHeader adds the logo (when available), business name,
// document title and date. Without a logo the header simply shrinks.
func addQuotationHeader(m core.Maroto, data QuotationData) {
	if len(data.Logo) > 0 {
		ext := extension.Jpg
		if isPNG(data.Logo) {
			ext = extension.Png
		}
		m.AddRows(
			row.New(28).Add(
				image.NewFromBytesCol(12, data.Logo, ext, props.Rect{
					Center:  true,
					Percent: 90,
				}),
			),
		)
	}

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.BusinessName, props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: brandPrimary,
				}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New("QUOTATION", props.Text{
					Size:  13,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: brandDark,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Date: %s", data.GeneratedDate), props.Text{
					Size:  9,
					Align: align.Center,
					Color: brandMuted,
				}),
			),
		),
		row.New(4),
	)
}

// addBusinessDetails adds the contact block under the header.
func addBusinessDetails(m core.Maroto, data QuotationData) {
	panel := &props.Cell{BackgroundColor: panelBg}
	line := props.Text{Size: 9, Align: align.Left, Color: brandDark}

	details := []string{
		fmt.Sprintf("Contact: %s", data.ContactName),
		fmt.Sprintf("Phone: %s", data.Phone),
		data.Location,
	}
	for _, s := range data.Socials {
		details = append(details, fmt.Sprintf("%s: %s (%s)", s.Label, s.Handle, s.URL))
	}

	for _, d := range details {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(d, line)).WithStyle(panel),
			),
		)
	}
	m.AddRows(row.New(5))
}

// addCategorySection adds one category heading followed by its service lines.
func addCategorySection(m core.Maroto, group CategoryGroup) {
	headerCell := &props.Cell{BackgroundColor: brandPrimary}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(string(group.Category), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: white,
				}),
			).WithStyle(headerCell),
		),
	)

	for _, line := range group.Lines {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(line.Name, props.Text{
						Size:  9,
						Style: fontstyle.Bold,
						Align: align.Left,
						Color: brandDark,
					}),
				),
			),
			row.New(6).Add(
				col.New(8).Add(
					text.New(fmt.Sprintf("Sessions: %d x %s", line.Quantity, FormatRupeesASCII(line.UnitPrice)), props.Text{
						Size:  8,
						Align: align.Left,
						Color: brandMuted,
					}),
				),
				col.New(4).Add(
					text.New(FormatRupeesASCII(line.LineTotal), props.Text{
						Size:  9,
						Style: fontstyle.Bold,
						Align: align.Right,
						Color: brandDark,
					}),
				),
			),
		)
	}
	m.AddRows(row.New(3))
}

// addQuotationSummary adds the session count and grand total block.
func addQuotationSummary(m core.Maroto, data QuotationData) {
	panel := &props.Cell{BackgroundColor: panelBg}
	totalCell := &props.Cell{BackgroundColor: brandPrimary}

	m.AddRows(
		row.New(3),
		row.New(8).Add(
			col.New(8).Add(
				text.New("Total Sessions", props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: brandDark,
				}),
			).WithStyle(panel),
			col.New(4).Add(
				text.New(fmt.Sprintf("%d", data.Totals.TotalSessions), props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: brandDark,
				}),
			).WithStyle(panel),
		),
		row.New(10).Add(
			col.New(8).Add(
				text.New("TOTAL AMOUNT", props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: white,
				}),
			).WithStyle(totalCell),
			col.New(4).Add(
				text.New(FormatRupeesASCII(data.Totals.GrandTotal), props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: white,
				}),
			).WithStyle(totalCell),
		),
	)
}

// addAlbumPricing adds the fixed album rate card below the summary.
func addAlbumPricing(m core.Maroto, data QuotationData) {
	if len(data.AlbumPricing) == 0 {
		return
	}
	m.AddRows(
		row.New(4),
		row.New(8).Add(
			col.New(12).Add(
				text.New("ALBUM PRICING", props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: brandPrimary,
				}),
			),
		),
	)
	for _, p := range data.AlbumPricing {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(asciiCurrency(p), props.Text{
						Size:  8,
						Align: align.Left,
						Color: brandDark,
					}),
				),
			),
		)
	}
}

// addImportantNotes adds the terms bullet list.
func addImportantNotes(m core.Maroto, data QuotationData) {
	if len(data.Notes) == 0 {
		return
	}
	m.AddRows(
		row.New(4),
		row.New(8).Add(
			col.New(12).Add(
				text.New("IMPORTANT NOTES", props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: brandPrimary,
				}),
			),
		),
	)
	for _, note := range data.Notes {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New("- "+asciiCurrency(note), props.Text{
						Size:  8,
						Align: align.Left,
						Color: brandMuted,
					}),
				),
			),
		)
	}
}

// addQuotationFooter adds the closing thank-you lines.
func addQuotationFooter(m core.Maroto, data QuotationData) {
	m.AddRows(row.New(5))
	for _, line := range data.FooterLines {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(line, props.Text{
						Size:  9,
						Style: fontstyle.Italic,
						Align: align.Center,
						Color: brandPrimary,
					}),
				),
			),
		)
	}
}

// asciiCurrency rewrites the rupee sign for the Latin-1 PDF fonts.
func asciiCurrency(s string) string {
	return strings.ReplaceAll(s, "₹", "Rs. ")
}
