package services

// sampleQuotationData builds a small two-category quotation used by the
// renderer tests.
func sampleQuotationData() QuotationData {
	lines := []QuotationLine{
		{Name: "Candid Photography", Quantity: 2, UnitPrice: 1000, LineTotal: 2000},
		{Name: "Drone Coverage", Quantity: 1, UnitPrice: 2500, LineTotal: 2500},
	}
	return QuotationData{
		BusinessName:  "Master Video Photography",
		ContactName:   "Shivakumar G",
		Phone:         "9845452391",
		Location:      "Bengaluru - 560079",
		GeneratedDate: "30 August 2026",
		Groups:        GroupByCategory(lines),
		Totals: QuotationTotals{
			GrandTotal:       4500,
			TotalSessions:    3,
			SelectedServices: 2,
		},
		AlbumPricing: []string{
			"Album Sheet (12x30 / 12x36): ₹300 per sheet",
		},
		Notes: []string{
			"All prices are in Indian Rupees (INR)",
			"This quotation is valid for 30 days",
		},
		FooterLines: []string{
			"Thank you for considering Master Video Photography!",
		},
	}
}
