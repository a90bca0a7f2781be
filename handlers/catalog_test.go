package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"masterquote/testhelpers"
)

func TestHandleServiceList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestService(t, app, "Drone Coverage", 10000, 0, 2)
	testhelpers.CreateTestService(t, app, "Candid Photography", 15000, 2, 1)

	handler := HandleServiceList(app)
	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var views []ServiceView
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 services, got %d", len(views))
	}

	// sort_order decides placement, not insertion order.
	if views[0].Name != "Candid Photography" {
		t.Errorf("first service = %q, want Candid Photography", views[0].Name)
	}
	if views[0].Category != "Photography Services" {
		t.Errorf("category = %q, want Photography Services", views[0].Category)
	}
	if views[0].LineTotal != 30000 {
		t.Errorf("line total = %d, want 30000", views[0].LineTotal)
	}
	if views[0].LineTotalDisplay != "₹30,000" {
		t.Errorf("line total display = %q, want ₹30,000", views[0].LineTotalDisplay)
	}
	if views[1].Category != "Premium Add-ons" {
		t.Errorf("category = %q, want Premium Add-ons", views[1].Category)
	}
}

func TestHandleSummary(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestService(t, app, "Candid Photography", 1000, 2, 1)
	testhelpers.CreateTestService(t, app, "Drone Coverage", 2500, 1, 2)
	testhelpers.CreateTestService(t, app, "Live Streaming", 9000, 0, 3)

	handler := HandleSummary(app)
	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var summary SummaryView
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if summary.GrandTotal != 4500 {
		t.Errorf("grand total = %d, want 4500", summary.GrandTotal)
	}
	if summary.GrandTotalDisplay != "₹4,500" {
		t.Errorf("grand total display = %q, want ₹4,500", summary.GrandTotalDisplay)
	}
	if summary.TotalSessions != 3 {
		t.Errorf("total sessions = %d, want 3", summary.TotalSessions)
	}
	if summary.SelectedLabel != "2 services selected" {
		t.Errorf("label = %q, want %q", summary.SelectedLabel, "2 services selected")
	}
	wantProgress := 2.0 / 3.0 * 100
	if diff := summary.ProgressPercent - wantProgress; diff > 0.01 || diff < -0.01 {
		t.Errorf("progress = %f, want %f", summary.ProgressPercent, wantProgress)
	}
}

func TestHandleSummary_EmptyCatalog(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleSummary(app)
	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var summary SummaryView
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if summary.GrandTotal != 0 || summary.ProgressPercent != 0 {
		t.Errorf("expected empty summary, got %+v", summary)
	}
}
