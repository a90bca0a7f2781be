package collections

import (
	"testing"
)

func TestSeedCatalog(t *testing.T) {
	app := newTestApp(t)

	if err := SeedCatalog(app); err != nil {
		t.Fatalf("SeedCatalog: %v", err)
	}

	records, err := app.FindAllRecords("catalog_items")
	if err != nil {
		t.Fatalf("query catalog_items: %v", err)
	}
	if len(records) != len(catalogSeed) {
		t.Fatalf("expected %d seeded items, got %d", len(catalogSeed), len(records))
	}

	for _, rec := range records {
		if rec.GetInt("quantity") != 0 {
			t.Errorf("seeded item %q has quantity %d, want 0", rec.GetString("name"), rec.GetInt("quantity"))
		}
		if rec.GetInt("unit_price") <= 0 {
			t.Errorf("seeded item %q has no unit price", rec.GetString("name"))
		}
		if rec.GetInt("sort_order") <= 0 {
			t.Errorf("seeded item %q has no sort order", rec.GetString("name"))
		}
	}
}

func TestSeedCatalog_Idempotent(t *testing.T) {
	app := newTestApp(t)

	if err := SeedCatalog(app); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	// Simulate a customer picking sessions, then a restart.
	records, err := app.FindAllRecords("catalog_items")
	if err != nil {
		t.Fatalf("query catalog_items: %v", err)
	}
	records[0].Set("quantity", 3)
	if err := app.Save(records[0]); err != nil {
		t.Fatalf("update quantity: %v", err)
	}

	if err := SeedCatalog(app); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	after, err := app.FindAllRecords("catalog_items")
	if err != nil {
		t.Fatalf("query catalog_items: %v", err)
	}
	if len(after) != len(catalogSeed) {
		t.Errorf("re-seed changed item count: %d", len(after))
	}

	edited, err := app.FindRecordById("catalog_items", records[0].Id)
	if err != nil {
		t.Fatalf("find edited record: %v", err)
	}
	if edited.GetInt("quantity") != 3 {
		t.Errorf("re-seed clobbered quantity: %d", edited.GetInt("quantity"))
	}
}
