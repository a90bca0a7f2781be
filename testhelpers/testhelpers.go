// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"masterquote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestService creates a catalog item record and returns it.
func CreateTestService(t *testing.T, app *pocketbase.PocketBase, name string, unitPrice, quantity, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("catalog_items")
	if err != nil {
		t.Fatalf("failed to find catalog_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("unit_price", unitPrice)
	record.Set("quantity", quantity)
	record.Set("sort_order", sortOrder)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test service: %v", err)
	}

	return record
}

// SetQuantity updates a catalog item's quantity directly, bypassing the
// handler layer. Useful for arranging state in tests.
func SetQuantity(t *testing.T, app *pocketbase.PocketBase, recordID string, quantity int) {
	t.Helper()

	record, err := app.FindRecordById("catalog_items", recordID)
	if err != nil {
		t.Fatalf("failed to find catalog item %s: %v", recordID, err)
	}
	record.Set("quantity", quantity)
	if err := app.Save(record); err != nil {
		t.Fatalf("failed to update quantity on %s: %v", recordID, err)
	}
}
