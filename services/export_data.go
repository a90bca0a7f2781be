package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/pocketbase/pocketbase"
)

// ErrEmptySelection is returned when a quotation is requested while no
// service has a quantity above zero.
var ErrEmptySelection = errors.New("no services selected")

// logoLoadTimeout bounds how long document generation waits for the
// header image before rendering without it.
const logoLoadTimeout = 5 * time.Second

// QuotationLine is one selected catalog item on a quotation.
type QuotationLine struct {
	Name      string
	Quantity  int
	UnitPrice int
	LineTotal int
}

// SocialLink is a social-media handle printed in the business details block.
type SocialLink struct {
	Label  string
	Handle string
	URL    string
}

// QuotationData is the format-independent quotation document. All
// renderers (PDF, text, Excel) consume the same struct.
type QuotationData struct {
	BusinessName  string
	ContactName   string
	Phone         string
	Location      string
	Socials       []SocialLink
	GeneratedDate string
	Groups        []CategoryGroup
	Totals        QuotationTotals
	AlbumPricing  []string
	Notes         []string
	FooterLines   []string
	Logo          []byte
}

// BuildQuotationData assembles a quotation from the current catalog
// state. It returns ErrEmptySelection when nothing is selected. A
// missing or slow logo is logged and skipped; it never fails the build.
func BuildQuotationData(ctx context.Context, app *pocketbase.PocketBase, now time.Time, logoSource string) (QuotationData, error) {
	records, err := app.FindAllRecords("catalog_items")
	if err != nil {
		return QuotationData{}, fmt.Errorf("load catalog: %w", err)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].GetInt("sort_order") < records[j].GetInt("sort_order")
	})

	var lines []QuotationLine
	var forTotals []LineForTotals
	for _, rec := range records {
		qty := rec.GetInt("quantity")
		price := rec.GetInt("unit_price")
		forTotals = append(forTotals, LineForTotals{UnitPrice: price, Quantity: qty})
		if qty <= 0 {
			continue
		}
		lines = append(lines, QuotationLine{
			Name:      rec.GetString("name"),
			Quantity:  qty,
			UnitPrice: price,
			LineTotal: CalcLineTotal(price, qty),
		})
	}

	if len(lines) == 0 {
		return QuotationData{}, ErrEmptySelection
	}

	data := QuotationData{
		BusinessName: "Master Video Photography",
		ContactName:  "Shivakumar G",
		Phone:        "9845452391",
		Location:     "Bengaluru - 560079",
		Socials: []SocialLink{
			{Label: "Instagram", Handle: "@mastervideophotography", URL: "https://instagram.com/mastervideophotography"},
			{Label: "YouTube", Handle: "@mastervideophotography", URL: "https://youtube.com/@mastervideophotography"},
		},
		GeneratedDate: now.Format("2 January 2006"),
		Groups:        GroupByCategory(lines),
		Totals:        CalcQuotationTotals(forTotals),
		AlbumPricing: []string{
			"Album Sheet (12x30 / 12x36): ₹300 per sheet",
			"Album Pad: ₹1,500 per pad",
		},
		Notes: []string{
			"All prices are in Indian Rupees (INR)",
			"Coverage charges are per session",
			"This quotation is valid for 30 days",
			"Final pricing may vary based on specific requirements",
			"Contact us for customized packages",
		},
		FooterLines: []string{
			"Thank you for considering Master Video Photography!",
			"We look forward to capturing your special moments.",
		},
	}

	if logoSource != "" {
		logoCtx, cancel := context.WithTimeout(ctx, logoLoadTimeout)
		defer cancel()
		logo, err := LoadLogo(logoCtx, logoSource)
		if err != nil {
			log.Printf("quotation_data: logo unavailable, rendering without it: %v", err)
		} else {
			data.Logo = logo
		}
	}

	return data, nil
}
