package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// MigrateNegativeQuantities clamps any stored quantity below zero back
// to zero. Quantities can only go negative through manual edits of the
// database, but every document build assumes the invariant holds.
func MigrateNegativeQuantities(app *pocketbase.PocketBase) error {
	records, err := app.FindAllRecords("catalog_items")
	if err != nil {
		return fmt.Errorf("query catalog_items: %w", err)
	}

	repaired := 0
	for _, rec := range records {
		if rec.GetInt("quantity") >= 0 {
			continue
		}
		rec.Set("quantity", 0)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("repair quantity on %s: %w", rec.Id, err)
		}
		repaired++
	}

	if repaired > 0 {
		log.Printf("Repaired %d negative catalog quantities.", repaired)
	}
	return nil
}
