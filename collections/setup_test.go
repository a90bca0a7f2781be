package collections

import (
	"testing"

	"github.com/pocketbase/pocketbase"
)

// newTestApp bootstraps a throwaway PocketBase instance with the
// catalog collection created. testhelpers cannot be used here because
// it imports this package.
func newTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: t.TempDir(),
	})
	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	Setup(app)
	return app
}

func TestSetup_CreatesCatalogItems(t *testing.T) {
	app := newTestApp(t)

	col, err := app.FindCollectionByNameOrId("catalog_items")
	if err != nil {
		t.Fatalf("catalog_items collection not created: %v", err)
	}

	for _, field := range []string{"name", "unit_price", "quantity", "sort_order"} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("catalog_items missing field %q", field)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := newTestApp(t)

	// Second run must reuse the existing collection.
	Setup(app)

	col, err := app.FindCollectionByNameOrId("catalog_items")
	if err != nil {
		t.Fatalf("catalog_items collection missing after re-run: %v", err)
	}
	if col == nil {
		t.Fatal("expected catalog_items collection")
	}
}
