package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"college-admin/app/models"
	"college-admin/app/routes/helpers"
	"college-admin/app/state"
)

// StatsAPI returns the headline counts for the dashboard cards.
func (h *Handler) StatsAPI(c *fiber.Ctx) error {
	if _, status := h.store.Students(); status != state.StatusSucceeded {
		if err := h.store.RefreshAll(c.UserContext(), h.fetcher); err != nil {
			return helpers.Error(c, err)
		}
	}

	courses, _ := h.store.Courses()
	batches, _ := h.store.Batches()
	students, _ := h.store.Students()

	active := 0
	for _, s := range students {
		if s.Status == "" || s.Status == models.StatusActive {
			active++
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"students": len(students),
			"courses":  len(courses),
			"batches":  len(batches),
			"active":   active,
		},
	})
}
