package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuotationExcel renders a quotation as a styled Excel workbook
// and returns the file contents as a byte slice.
func GenerateQuotationExcel(data QuotationData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Quotation"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D"}
	lastCol := columns[len(columns)-1]

	widths := []float64{42, 10, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16, Color: "#667EEA"},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	categoryStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#667EEA"},
			Pattern: 1,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create category style: %w", err)
	}

	lineStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	noteStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 9, Color: "#666666"},
	})
	if err != nil {
		return nil, fmt.Errorf("create note style: %w", err)
	}

	// ── Header rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.BusinessName))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge subtitle: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "Quotation - "+data.GeneratedDate)
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	// ── Column headers (row 4) ──────────────────────────────────────────

	headers := []string{"Service", "Sessions", "Unit Price", "Subtotal"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s4", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", headerStyle)

	// ── Service rows by category ────────────────────────────────────────

	row := 5
	for _, group := range data.Groups {
		rowStr := fmt.Sprintf("%d", row)
		if err := f.MergeCell(sheetName, "A"+rowStr, lastCol+rowStr); err != nil {
			return nil, fmt.Errorf("merge category: %w", err)
		}
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(string(group.Category)))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, categoryStyle)
		row++

		for _, line := range group.Lines {
			rowStr = fmt.Sprintf("%d", row)
			f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(line.Name))
			f.SetCellValue(sheetName, "B"+rowStr, line.Quantity)
			f.SetCellValue(sheetName, "C"+rowStr, FormatRupees(line.UnitPrice))
			f.SetCellValue(sheetName, "D"+rowStr, FormatRupees(line.LineTotal))
			f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, lineStyle)
			row++
		}
	}

	// ── Summary rows ────────────────────────────────────────────────────

	row++
	summaryRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "C"+summaryRow, "Total Sessions:")
	f.SetCellStyle(sheetName, "C"+summaryRow, "C"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "D"+summaryRow, data.Totals.TotalSessions)
	f.SetCellStyle(sheetName, "D"+summaryRow, "D"+summaryRow, summaryValueStyle)
	row++

	summaryRow = fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "C"+summaryRow, "TOTAL AMOUNT:")
	f.SetCellStyle(sheetName, "C"+summaryRow, "C"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "D"+summaryRow, FormatRupees(data.Totals.GrandTotal))
	f.SetCellStyle(sheetName, "D"+summaryRow, "D"+summaryRow, summaryValueStyle)
	row += 2

	// ── Album pricing and notes ─────────────────────────────────────────

	for _, section := range []struct {
		title string
		lines []string
	}{
		{"ALBUM PRICING", data.AlbumPricing},
		{"IMPORTANT NOTES", data.Notes},
	} {
		if len(section.lines) == 0 {
			continue
		}
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, section.title)
		f.SetCellStyle(sheetName, "A"+rowStr, "A"+rowStr, summaryValueStyle)
		row++
		for _, line := range section.lines {
			rowStr = fmt.Sprintf("%d", row)
			f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(line))
			f.SetCellStyle(sheetName, "A"+rowStr, "A"+rowStr, noteStyle)
			row++
		}
		row++
	}

	for _, line := range data.FooterLines {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(line))
		f.SetCellStyle(sheetName, "A"+rowStr, "A"+rowStr, noteStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
