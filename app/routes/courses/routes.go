package courses

import (
	"github.com/gofiber/fiber/v2"

	"college-admin/app/backend"
	"college-admin/app/state"
)

// Handler serves the course catalog API.
type Handler struct {
	client *backend.Client
	store  *state.Store
}

func SetupCoursesRoutes(app *fiber.App, authMW fiber.Handler, client *backend.Client, store *state.Store) {
	h := &Handler{client: client, store: store}

	api := app.Group("/api/courses")
	api.Use(authMW)
	api.Get("/", h.ListAPI)
	api.Post("/", h.CreateAPI)
	api.Put("/:id", h.UpdateAPI)
	api.Delete("/:id", h.DeleteAPI)
}
