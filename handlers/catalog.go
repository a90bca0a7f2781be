package handlers

import (
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"masterquote/services"
)

// ServiceView is the JSON projection of one catalog item.
type ServiceView struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	UnitPrice        int    `json:"unitPrice"`
	UnitPriceDisplay string `json:"unitPriceDisplay"`
	Quantity         int    `json:"quantity"`
	LineTotal        int    `json:"lineTotal"`
	LineTotalDisplay string `json:"lineTotalDisplay"`
}

// SummaryView is the JSON projection of the floating quotation summary.
type SummaryView struct {
	GrandTotal        int     `json:"grandTotal"`
	GrandTotalDisplay string  `json:"grandTotalDisplay"`
	TotalSessions     int     `json:"totalSessions"`
	SelectedServices  int     `json:"selectedServices"`
	SelectedLabel     string  `json:"selectedLabel"`
	ProgressPercent   float64 `json:"progressPercent"`
}

// loadCatalog returns all catalog items in display order.
func loadCatalog(app *pocketbase.PocketBase) ([]*core.Record, error) {
	records, err := app.FindAllRecords("catalog_items")
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].GetInt("sort_order") < records[j].GetInt("sort_order")
	})
	return records, nil
}

func serviceViewFromRecord(rec *core.Record) ServiceView {
	price := rec.GetInt("unit_price")
	qty := rec.GetInt("quantity")
	lineTotal := services.CalcLineTotal(price, qty)
	return ServiceView{
		ID:               rec.Id,
		Name:             rec.GetString("name"),
		Category:         string(services.Classify(rec.GetString("name"))),
		UnitPrice:        price,
		UnitPriceDisplay: services.FormatRupees(price),
		Quantity:         qty,
		LineTotal:        lineTotal,
		LineTotalDisplay: services.FormatRupees(lineTotal),
	}
}

// buildSummaryView recomputes the quotation summary from the current
// catalog records. Mutating handlers return it so the page can refresh
// without a second round trip.
func buildSummaryView(app *pocketbase.PocketBase) (SummaryView, error) {
	records, err := loadCatalog(app)
	if err != nil {
		return SummaryView{}, err
	}

	items := make([]services.LineForTotals, 0, len(records))
	for _, rec := range records {
		items = append(items, services.LineForTotals{
			UnitPrice: rec.GetInt("unit_price"),
			Quantity:  rec.GetInt("quantity"),
		})
	}
	totals := services.CalcQuotationTotals(items)
	progress := services.SelectionProgress(totals.SelectedServices, len(records))

	return SummaryView{
		GrandTotal:        totals.GrandTotal,
		GrandTotalDisplay: services.FormatRupees(totals.GrandTotal),
		TotalSessions:     totals.TotalSessions,
		SelectedServices:  totals.SelectedServices,
		SelectedLabel:     fmt.Sprintf("%d services selected", totals.SelectedServices),
		ProgressPercent:   progress * 100,
	}, nil
}

// HandleServiceList returns the full catalog in display order.
func HandleServiceList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := loadCatalog(app)
		if err != nil {
			log.Printf("service_list: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		views := make([]ServiceView, 0, len(records))
		for _, rec := range records {
			views = append(views, serviceViewFromRecord(rec))
		}
		return e.JSON(http.StatusOK, views)
	}
}

// HandleSummary returns the current quotation summary.
func HandleSummary(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		summary, err := buildSummaryView(app)
		if err != nil {
			log.Printf("summary: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusOK, summary)
	}
}
