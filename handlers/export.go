package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"masterquote/services"
)

const exportFilenamePrefix = "Master_Video_Photography_Quotation_"

// logoSource returns where the quotation header image is loaded from.
// QUOTATION_LOGO may point at a local path or an http(s) URL.
func logoSource() string {
	if v := os.Getenv("QUOTATION_LOGO"); v != "" {
		return v
	}
	return "static/logo.png"
}

// buildQuotation assembles the export document for the current catalog
// state. An empty selection is reported to the client as a warning
// toast with no file attached.
func buildQuotation(app *pocketbase.PocketBase, e *core.RequestEvent, now time.Time) (services.QuotationData, bool, error) {
	data, err := services.BuildQuotationData(e.Request.Context(), app, now, logoSource())
	if err != nil {
		if errors.Is(err, services.ErrEmptySelection) {
			SetToast(e, "warning", "Please select at least one service to generate a quotation.")
			e.Response.Header().Set("HX-Reswap", "none")
			return services.QuotationData{}, false, e.String(http.StatusBadRequest, "No services selected")
		}
		log.Printf("quotation_export: %v", err)
		return services.QuotationData{}, false, ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
	return data, true, nil
}

func exportFilename(now time.Time, ext string) string {
	return exportFilenamePrefix + now.Format("2006-01-02") + ext
}

// HandleQuotationExportPDF generates and downloads the PDF quotation.
func HandleQuotationExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		now := time.Now()
		data, ok, err := buildQuotation(app, e, now)
		if !ok {
			return err
		}

		pdfBytes, err := services.GenerateQuotationPDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Error generating PDF. Please try again.")
		}

		SetToast(e, "success", "PDF quotation downloaded successfully!")
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(now, ".pdf")))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuotationExportText generates and downloads the plain-text quotation.
func HandleQuotationExportText(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		now := time.Now()
		data, ok, err := buildQuotation(app, e, now)
		if !ok {
			return err
		}

		SetToast(e, "success", "Text quotation downloaded successfully!")
		e.Response.Header().Set("Content-Type", "text/plain; charset=utf-8")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(now, ".txt")))
		e.Response.Write(services.GenerateQuotationText(data))
		return nil
	}
}

// HandleQuotationExportExcel generates and downloads the Excel quotation.
func HandleQuotationExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		now := time.Now()
		data, ok, err := buildQuotation(app, e, now)
		if !ok {
			return err
		}

		xlsxBytes, err := services.GenerateQuotationExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Error generating Excel file. Please try again.")
		}

		SetToast(e, "success", "Excel quotation downloaded successfully!")
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(now, ".xlsx")))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
