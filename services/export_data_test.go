package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"masterquote/testhelpers"
)

func TestBuildQuotationData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestService(t, app, "Candid Photography", 1000, 2, 1)
	testhelpers.CreateTestService(t, app, "Drone Coverage", 2500, 1, 2)
	testhelpers.CreateTestService(t, app, "Live Streaming", 9000, 0, 3)

	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	data, err := BuildQuotationData(context.Background(), app, now, "")
	if err != nil {
		t.Fatalf("BuildQuotationData: %v", err)
	}

	if data.GeneratedDate != "30 August 2026" {
		t.Errorf("GeneratedDate = %q, want %q", data.GeneratedDate, "30 August 2026")
	}
	if data.Totals.GrandTotal != 4500 {
		t.Errorf("GrandTotal = %d, want 4500", data.Totals.GrandTotal)
	}
	if data.Totals.TotalSessions != 3 {
		t.Errorf("TotalSessions = %d, want 3", data.Totals.TotalSessions)
	}
	if data.Totals.SelectedServices != 2 {
		t.Errorf("SelectedServices = %d, want 2", data.Totals.SelectedServices)
	}

	if len(data.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(data.Groups))
	}
	if data.Groups[0].Category != CategoryPhotography {
		t.Errorf("first group = %q, want %q", data.Groups[0].Category, CategoryPhotography)
	}
	if data.Groups[1].Category != CategoryAddOns {
		t.Errorf("second group = %q, want %q", data.Groups[1].Category, CategoryAddOns)
	}

	line := data.Groups[0].Lines[0]
	if line.Name != "Candid Photography" || line.Quantity != 2 || line.LineTotal != 2000 {
		t.Errorf("unexpected photography line: %+v", line)
	}

	if data.BusinessName != "Master Video Photography" {
		t.Errorf("BusinessName = %q", data.BusinessName)
	}
	if len(data.Notes) == 0 || len(data.FooterLines) == 0 {
		t.Error("expected notes and footer lines to be populated")
	}
}

func TestBuildQuotationData_EmptySelection(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestService(t, app, "Candid Photography", 15000, 0, 1)

	_, err := BuildQuotationData(context.Background(), app, time.Now(), "")
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
}

func TestBuildQuotationData_LogoUnavailable(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestService(t, app, "Candid Photography", 15000, 1, 1)

	data, err := BuildQuotationData(context.Background(), app, time.Now(), "/nonexistent/logo.png")
	if err != nil {
		t.Fatalf("missing logo must not fail the build: %v", err)
	}
	if data.Logo != nil {
		t.Error("expected nil logo bytes")
	}
}

func TestBuildQuotationData_CatalogOrder(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	// Inserted out of order; sort_order decides placement.
	testhelpers.CreateTestService(t, app, "Traditional Photography", 12000, 1, 2)
	testhelpers.CreateTestService(t, app, "Candid Photography", 15000, 1, 1)

	data, err := BuildQuotationData(context.Background(), app, time.Now(), "")
	if err != nil {
		t.Fatalf("BuildQuotationData: %v", err)
	}

	lines := data.Groups[0].Lines
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Name != "Candid Photography" || lines[1].Name != "Traditional Photography" {
		t.Errorf("lines out of catalog order: %q, %q", lines[0].Name, lines[1].Name)
	}
}
