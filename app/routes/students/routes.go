package students

import (
	"github.com/gofiber/fiber/v2"

	"college-admin/app/backend"
	"college-admin/app/enrollment"
	"college-admin/app/state"
)

// Handler serves student records: listing, admission, edits, CSV export
// and bulk upload.
type Handler struct {
	client  *backend.Client
	store   *state.Store
	manager *enrollment.Manager
}

func SetupStudentsRoutes(app *fiber.App, authMW fiber.Handler, client *backend.Client, store *state.Store, manager *enrollment.Manager) {
	h := &Handler{client: client, store: store, manager: manager}

	api := app.Group("/api/students")
	api.Use(authMW)
	api.Get("/", h.ListAPI)
	api.Get("/table", h.TableAPI)
	api.Get("/export", h.ExportCSVAPI)
	api.Post("/", h.AdmitAPI)
	api.Post("/bulk_upload", h.BulkUploadAPI)
	api.Get("/:id", h.GetAPI)
	api.Put("/:id", h.UpdateAPI)
	api.Delete("/:id", h.DeleteAPI)
}
