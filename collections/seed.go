package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// catalogDef describes one seeded studio service.
type catalogDef struct {
	Name      string
	UnitPrice int
}

// catalogSeed is the fixed studio service catalog. Quantities start at
// zero; customers pick session counts on the quotation page.
var catalogSeed = []catalogDef{
	{"Candid Photography", 15000},
	{"Traditional Photography", 12000},
	{"Candid Videography", 18000},
	{"Traditional Videography", 15000},
	{"Video Mixing & Editing", 8000},
	{"Drone Coverage", 10000},
	{"LED Wall Display", 12000},
	{"Live Streaming", 9000},
	{"Photo Album Design", 5000},
}

// SeedCatalog inserts the studio service catalog if the collection is
// empty. Re-running against an already seeded database is a no-op so
// edited quantities survive restarts.
func SeedCatalog(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("catalog_items")
	if err != nil {
		return fmt.Errorf("catalog_items collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("query catalog_items: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("Catalog already seeded (%d items), skipping.", len(existing))
		return nil
	}

	for i, def := range catalogSeed {
		record := core.NewRecord(col)
		record.Set("name", def.Name)
		record.Set("unit_price", def.UnitPrice)
		record.Set("quantity", 0)
		record.Set("sort_order", i+1)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed %q: %w", def.Name, err)
		}
	}

	log.Printf("Seeded %d catalog items.", len(catalogSeed))
	return nil
}
