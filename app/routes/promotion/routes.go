package promotion

import (
	"github.com/gofiber/fiber/v2"

	"college-admin/app/enrollment"
	"college-admin/app/state"
)

// Handler serves the promotion, bulk promotion and passout APIs.
type Handler struct {
	store   *state.Store
	fetcher state.Fetcher
	manager *enrollment.Manager
}

func SetupPromotionRoutes(app *fiber.App, authMW fiber.Handler, fetcher state.Fetcher, store *state.Store, manager *enrollment.Manager) {
	h := &Handler{store: store, fetcher: fetcher, manager: manager}

	api := app.Group("/api")
	api.Use(authMW)
	api.Post("/promote_batch", h.PromoteBatchAPI)
	api.Post("/promote_all", h.PromoteAllAPI)
	api.Post("/passout_students", h.PassoutAPI)
}
