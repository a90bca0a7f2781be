// Package services provides the quotation totals engine, category
// classification and document rendering for the service catalog.
package services

// QuotationTotals holds the aggregate figures shown in the floating
// summary and on every exported quotation.
type QuotationTotals struct {
	GrandTotal       int
	TotalSessions    int
	SelectedServices int
}

// LineForTotals is the minimal per-item input for totals calculation.
type LineForTotals struct {
	UnitPrice int
	Quantity  int
}

// CalcLineTotal returns the subtotal for a single catalog item.
func CalcLineTotal(unitPrice, quantity int) int {
	return unitPrice * quantity
}

// CalcQuotationTotals recomputes all aggregates from scratch. Items with
// zero quantity contribute nothing; an item counts as selected once,
// regardless of how many sessions were booked.
func CalcQuotationTotals(items []LineForTotals) QuotationTotals {
	var totals QuotationTotals
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		totals.GrandTotal += CalcLineTotal(item.UnitPrice, item.Quantity)
		totals.TotalSessions += item.Quantity
		totals.SelectedServices++
	}
	return totals
}

// ApplyQuantityChange returns the new quantity after applying delta,
// clamped so it never goes below zero.
func ApplyQuantityChange(current, delta int) int {
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}

// SelectionProgress returns the fraction of catalog items currently
// selected, in [0, 1].
func SelectionProgress(selected, total int) float64 {
	if total <= 0 {
		return 0
	}
	frac := float64(selected) / float64(total)
	if frac > 1 {
		return 1
	}
	return frac
}
