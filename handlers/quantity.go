package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"masterquote/services"
)

// QuantityView is the response to every quantity mutation: the updated
// item plus the recomputed summary.
type QuantityView struct {
	Item    ServiceView `json:"item"`
	Summary SummaryView `json:"summary"`
}

// HandleQuantityPatch updates a catalog item's quantity. The form may
// carry either "delta" (relative change) or "value" (absolute). Both
// are clamped so the stored quantity never goes below zero.
func HandleQuantityPatch(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("id")
		if itemID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing service ID")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		record, err := app.FindRecordById("catalog_items", itemID)
		if err != nil {
			log.Printf("quantity_patch: not found %s: %v", itemID, err)
			return ErrorToast(e, http.StatusNotFound, "Service not found")
		}

		current := record.GetInt("quantity")
		next := current

		if raw := e.Request.Form.Get("value"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return ErrorToast(e, http.StatusBadRequest, "Invalid quantity value")
			}
			next = services.ApplyQuantityChange(0, v)
		} else if raw := e.Request.Form.Get("delta"); raw != "" {
			d, err := strconv.Atoi(raw)
			if err != nil {
				return ErrorToast(e, http.StatusBadRequest, "Invalid quantity change")
			}
			next = services.ApplyQuantityChange(current, d)
		} else {
			return ErrorToast(e, http.StatusBadRequest, "Missing delta or value")
		}

		return saveQuantity(app, e, record, next)
	}
}

// HandleQuantityIncrement adds one session to a catalog item.
func HandleQuantityIncrement(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return applyQuantityDelta(app, 1)
}

// HandleQuantityDecrement removes one session, stopping at zero.
func HandleQuantityDecrement(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return applyQuantityDelta(app, -1)
}

func applyQuantityDelta(app *pocketbase.PocketBase, delta int) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("id")
		if itemID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing service ID")
		}

		record, err := app.FindRecordById("catalog_items", itemID)
		if err != nil {
			log.Printf("quantity_delta: not found %s: %v", itemID, err)
			return ErrorToast(e, http.StatusNotFound, "Service not found")
		}

		next := services.ApplyQuantityChange(record.GetInt("quantity"), delta)
		return saveQuantity(app, e, record, next)
	}
}

// saveQuantity persists the clamped quantity and responds with the
// updated item and summary. An unchanged quantity (decrement at zero)
// skips the save but still returns fresh projections.
func saveQuantity(app *pocketbase.PocketBase, e *core.RequestEvent, record *core.Record, next int) error {
	if next != record.GetInt("quantity") {
		record.Set("quantity", next)
		if err := app.Save(record); err != nil {
			log.Printf("save_quantity: error saving %s: %v", record.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
	}

	summary, err := buildSummaryView(app)
	if err != nil {
		log.Printf("save_quantity: %v", err)
		return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}

	return e.JSON(http.StatusOK, QuantityView{
		Item:    serviceViewFromRecord(record),
		Summary: summary,
	})
}
