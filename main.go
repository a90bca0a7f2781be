package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"masterquote/collections"
	"masterquote/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed the service catalog on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.SeedCatalog(app); err != nil {
			log.Printf("Warning: catalog seed failed: %v", err)
		}
		if err := collections.MigrateNegativeQuantities(app); err != nil {
			log.Printf("Warning: quantity migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files (quotation page, logo) from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Service catalog ──────────────────────────────────────
		se.Router.GET("/services", handlers.HandleServiceList(app))
		se.Router.GET("/summary", handlers.HandleSummary(app))

		// ── Quantity editing ─────────────────────────────────────
		se.Router.PATCH("/services/{id}/quantity", handlers.HandleQuantityPatch(app))
		se.Router.POST("/services/{id}/increment", handlers.HandleQuantityIncrement(app))
		se.Router.POST("/services/{id}/decrement", handlers.HandleQuantityDecrement(app))

		// ── Quotation ────────────────────────────────────────────
		se.Router.POST("/quotation/reset", handlers.HandleQuotationReset(app))
		se.Router.GET("/quotation/export/pdf", handlers.HandleQuotationExportPDF(app))
		se.Router.GET("/quotation/export/txt", handlers.HandleQuotationExportText(app))
		se.Router.GET("/quotation/export/excel", handlers.HandleQuotationExportExcel(app))

		// Redirect home to the quotation page
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/static/index.html")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
