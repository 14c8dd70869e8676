package promotion

import (
	"github.com/gofiber/fiber/v2"

	"college-admin/app/models"
	"college-admin/app/routes/helpers"
)

// PromoteBatchAPI reassigns every student matching the from-filter. The
// filter is the sole targeting mechanism: an ambiguous filter promotes
// zero or unexpected students, and the count is the operator's check.
func (h *Handler) PromoteBatchAPI(c *fiber.Ctx) error {
	var req models.PromoteBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	promoted, err := h.manager.PromoteBatch(c.UserContext(), req)
	if err != nil {
		return helpers.Error(c, err)
	}
	_ = h.store.RefreshStudents(c.UserContext(), h.fetcher)
	return c.JSON(fiber.Map{"promoted": promoted})
}

type promoteAllRequest struct {
	models.PromoteAllRequest
	Confirm bool `json:"confirm"`
}

// PromoteAllAPI runs the course-scoped bulk promotion. It deletes the
// passout candidates, so the operator must confirm explicitly before any
// backend call is made.
func (h *Handler) PromoteAllAPI(c *fiber.Ctx) error {
	var req promoteAllRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}
	if !req.Confirm {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "bulk promotion requires confirmation",
		})
	}

	result, err := h.manager.PromoteAll(c.UserContext(), req.PromoteAllRequest)
	if err != nil {
		return helpers.Error(c, err)
	}
	_ = h.store.RefreshStudents(c.UserContext(), h.fetcher)
	return c.JSON(result)
}

type passoutRequest struct {
	models.PassoutRequest
	Confirm bool `json:"confirm"`
}

// PassoutAPI irreversibly deletes every student matching the filter. The
// confirmation gate is enforced here, not just in the UI, because the
// operation cannot be undone.
func (h *Handler) PassoutAPI(c *fiber.Ctx) error {
	var req passoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}
	if !req.Confirm {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "passout requires confirmation",
		})
	}

	deleted, err := h.manager.Passout(c.UserContext(), req.PassoutRequest)
	if err != nil {
		return helpers.Error(c, err)
	}
	_ = h.store.RefreshStudents(c.UserContext(), h.fetcher)
	return c.JSON(fiber.Map{"deleted": deleted})
}
