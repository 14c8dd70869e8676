package examforms

import (
	"github.com/gofiber/fiber/v2"

	"college-admin/app/backend"
)

// Handler proxies exam-form and document uploads to the opaque document
// store behind the backend.
type Handler struct {
	client *backend.Client
}

func SetupExamFormsRoutes(app *fiber.App, authMW fiber.Handler, client *backend.Client) {
	h := &Handler{client: client}

	api := app.Group("/api/students/:id")
	api.Use(authMW)
	api.Post("/upload_exam_form", h.UploadExamFormAPI)
	api.Get("/exam_form_status", h.ExamFormStatusAPI)
	api.Post("/upload_document", h.UploadDocumentAPI)
}
