package services

import (
	"fmt"
	"strings"
)

const textRule = "============================================================"

// GenerateQuotationText renders a quotation as a plain UTF-8 report.
// The block order mirrors the PDF; amounts keep the real rupee sign.
func GenerateQuotationText(data QuotationData) []byte {
	var b strings.Builder

	b.WriteString(textRule + "\n")
	b.WriteString(centerText(data.BusinessName) + "\n")
	b.WriteString(centerText("QUOTATION") + "\n")
	b.WriteString(textRule + "\n\n")

	fmt.Fprintf(&b, "Date: %s\n\n", data.GeneratedDate)

	fmt.Fprintf(&b, "Contact: %s\n", data.ContactName)
	fmt.Fprintf(&b, "Phone: %s\n", data.Phone)
	fmt.Fprintf(&b, "%s\n", data.Location)
	for _, s := range data.Socials {
		fmt.Fprintf(&b, "%s: %s (%s)\n", s.Label, s.Handle, s.URL)
	}
	b.WriteString("\n")

	b.WriteString("SELECTED SERVICES\n")
	b.WriteString(textRule + "\n")
	for _, group := range data.Groups {
		fmt.Fprintf(&b, "\n%s\n", group.Category)
		b.WriteString(strings.Repeat("-", len(group.Category)) + "\n")
		for _, line := range group.Lines {
			fmt.Fprintf(&b, "%s\n", line.Name)
			fmt.Fprintf(&b, "  Sessions: %d x %s = %s\n",
				line.Quantity, FormatRupees(line.UnitPrice), FormatRupees(line.LineTotal))
		}
	}

	b.WriteString("\n" + textRule + "\n")
	fmt.Fprintf(&b, "Total Sessions: %d\n", data.Totals.TotalSessions)
	fmt.Fprintf(&b, "TOTAL AMOUNT: %s\n", FormatRupees(data.Totals.GrandTotal))
	b.WriteString(textRule + "\n")

	if len(data.AlbumPricing) > 0 {
		b.WriteString("\nALBUM PRICING\n")
		for _, p := range data.AlbumPricing {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}

	if len(data.Notes) > 0 {
		b.WriteString("\nIMPORTANT NOTES\n")
		for _, note := range data.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}

	b.WriteString("\n")
	for _, line := range data.FooterLines {
		b.WriteString(centerText(line) + "\n")
	}

	return []byte(b.String())
}

// centerText pads a line so it sits centered under the rule width.
func centerText(s string) string {
	width := len(textRule)
	runes := len([]rune(s))
	if runes >= width {
		return s
	}
	return strings.Repeat(" ", (width-runes)/2) + s
}
