package fees

import (
	"github.com/gofiber/fiber/v2"

	"college-admin/app/backend"
	"college-admin/app/enrollment"
)

// Handler serves the fee ledger API and the collections report.
type Handler struct {
	client  *backend.Client
	manager *enrollment.Manager
}

func SetupFeesRoutes(app *fiber.App, authMW fiber.Handler, client *backend.Client, manager *enrollment.Manager) {
	h := &Handler{client: client, manager: manager}

	api := app.Group("/api")
	api.Use(authMW)
	api.Get("/students/:id/fees_history", h.HistoryAPI)
	api.Get("/students/:id/fees_summary", h.SummaryAPI)
	api.Post("/students/:id/add_fees_payment", h.AddPaymentAPI)
	api.Delete("/fees_payments/:id", h.DeletePaymentAPI)
	api.Get("/fees_payments", h.ReportAPI)
}
