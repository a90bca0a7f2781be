package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuotationReset zeroes every catalog quantity. The confirmation
// dialog lives on the client; by the time this runs the user already
// agreed to start over.
func HandleQuotationReset(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := loadCatalog(app)
		if err != nil {
			log.Printf("reset: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		for _, rec := range records {
			if rec.GetInt("quantity") == 0 {
				continue
			}
			rec.Set("quantity", 0)
			if err := app.Save(rec); err != nil {
				log.Printf("reset: error saving %s: %v", rec.Id, err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		}

		SetToast(e, "info", "All selections have been reset!")

		summary, err := buildSummaryView(app)
		if err != nil {
			log.Printf("reset: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusOK, summary)
	}
}
