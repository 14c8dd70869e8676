package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"college-admin/app/state"
)

// Handler serves the console shell and the dashboard stats API.
type Handler struct {
	store   *state.Store
	fetcher state.Fetcher
}

func SetupDashboardRoutes(app *fiber.App, authMW fiber.Handler, fetcher state.Fetcher, store *state.Store) {
	h := &Handler{store: store, fetcher: fetcher}

	app.Get("/", authMW, h.IndexPage)

	api := app.Group("/api/dashboard")
	api.Use(authMW)
	api.Get("/stats", h.StatsAPI)
}

// IndexPage renders the console shell.
func (h *Handler) IndexPage(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":    "College Admin",
		"Operator": c.Locals("operator"),
	})
}
