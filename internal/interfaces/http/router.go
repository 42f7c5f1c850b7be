package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-captura/internal/application/capture"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Capture *capture.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	captureHandler := NewCaptureHandler(deps.Capture)
	importHandler := NewImportHandler(deps.Capture)
	schemaHandler := NewSchemaHandler()

	api.Get("/catalogs", captureHandler.Catalogs)
	api.Get("/schema/:name", schemaHandler.Get)

	// Contexto operativo
	api.Get("/context", captureHandler.GetContext)
	api.Patch("/context", captureHandler.PatchContext)

	// Borrador
	draft := api.Group("/draft")
	draft.Get("/", captureHandler.GetDraft)
	draft.Patch("/", captureHandler.PatchDraft)
	draft.Post("/class", captureHandler.ApplyClass)
	draft.Post("/sync", captureHandler.SyncDraft)
	draft.Post("/add", captureHandler.AddDraft)
	draft.Post("/update", captureHandler.UpdateDraft)
	draft.Post("/cancel", captureHandler.CancelEdit)

	// Bandeja (rutas fijas antes de /:id)
	queue := api.Group("/queue")
	queue.Get("/", captureHandler.GetQueue)
	queue.Delete("/", captureHandler.ClearQueue)
	queue.Get("/summary", captureHandler.GetSummary)
	queue.Get("/summary.pdf", captureHandler.SummaryPDF)
	queue.Get("/export.xml", captureHandler.ExportXML)
	queue.Post("/submit", captureHandler.Submit)
	queue.Post("/:id/edit", captureHandler.EditQueued)
	queue.Post("/:id/duplicate", captureHandler.DuplicateQueued)
	queue.Delete("/:id", captureHandler.DeleteQueued)

	// Importación CSV
	imports := api.Group("/import")
	imports.Post("/", importHandler.Import)
	imports.Post("/preview", importHandler.Preview)
	imports.Post("/preview/:id/commit", importHandler.Commit)
}
