package batches

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"college-admin/app/enrollment"
	"college-admin/app/routes/helpers"
	"college-admin/app/state"
)

// ListAPI returns batches, optionally narrowed to one course with
// ?course_id=N. The course narrowing is a pure derivation over the
// cached list, not a re-fetch.
func (h *Handler) ListAPI(c *fiber.Ctx) error {
	courseID := c.QueryInt("course_id", 0)

	items, status := h.store.Batches()
	if status != state.StatusSucceeded {
		if err := h.store.RefreshBatches(c.UserContext(), h.client); err != nil {
			return helpers.Error(c, err)
		}
		items, _ = h.store.Batches()
	}

	if courseID > 0 {
		items = enrollment.BatchesForCourse(courseID, items)
	}
	return c.JSON(items)
}

type batchRequest struct {
	Name     string `json:"name"`
	CourseID int    `json:"course_id"`
}

// CreateAPI adds an admission cohort under a course.
func (h *Handler) CreateAPI(c *fiber.Ctx) error {
	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}
	if strings.TrimSpace(req.Name) == "" || req.CourseID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "batch name and course_id are required",
		})
	}

	batch, err := h.client.CreateBatch(c.UserContext(), strings.TrimSpace(req.Name), req.CourseID)
	if err != nil {
		return helpers.Error(c, err)
	}
	_ = h.store.RefreshBatches(c.UserContext(), h.client)
	return c.Status(fiber.StatusCreated).JSON(batch)
}

// UpdateAPI renames a batch or moves it to another course.
func (h *Handler) UpdateAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid batch id",
		})
	}
	var req batchRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Name) == "" || req.CourseID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "batch name and course_id are required",
		})
	}

	batch, err := h.client.UpdateBatch(c.UserContext(), id, strings.TrimSpace(req.Name), req.CourseID)
	if err != nil {
		return helpers.Error(c, err)
	}
	_ = h.store.RefreshBatches(c.UserContext(), h.client)
	return c.JSON(batch)
}

// DeleteAPI removes a batch.
func (h *Handler) DeleteAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid batch id",
		})
	}
	if err := h.client.DeleteBatch(c.UserContext(), id); err != nil {
		return helpers.Error(c, err)
	}
	_ = h.store.RefreshBatches(c.UserContext(), h.client)
	return c.JSON(fiber.Map{"success": true, "id": id})
}
