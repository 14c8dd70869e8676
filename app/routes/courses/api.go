package courses

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"college-admin/app/routes/helpers"
	"college-admin/app/state"
)

// ListAPI returns the course catalog, serving the cache when it is warm.
func (h *Handler) ListAPI(c *fiber.Ctx) error {
	if items, status := h.store.Courses(); status == state.StatusSucceeded {
		return c.JSON(items)
	}
	if err := h.store.RefreshCourses(c.UserContext(), h.client); err != nil {
		return helpers.Error(c, err)
	}
	items, _ := h.store.Courses()
	return c.JSON(items)
}

type courseRequest struct {
	Name string `json:"name"`
}

// CreateAPI adds a course. Duplicate names surface as a 409 from the
// backend.
func (h *Handler) CreateAPI(c *fiber.Ctx) error {
	var req courseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "course name is required",
		})
	}

	course, err := h.client.CreateCourse(c.UserContext(), strings.TrimSpace(req.Name))
	if err != nil {
		return helpers.Error(c, err)
	}
	_ = h.store.RefreshCourses(c.UserContext(), h.client)
	return c.Status(fiber.StatusCreated).JSON(course)
}

// UpdateAPI renames a course.
func (h *Handler) UpdateAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid course id",
		})
	}
	var req courseRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "course name is required",
		})
	}

	course, err := h.client.UpdateCourse(c.UserContext(), id, strings.TrimSpace(req.Name))
	if err != nil {
		return helpers.Error(c, err)
	}
	_ = h.store.RefreshCourses(c.UserContext(), h.client)
	return c.JSON(course)
}

// DeleteAPI removes a course. The backend refuses while batches or
// students still reference it.
func (h *Handler) DeleteAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid course id",
		})
	}
	if err := h.client.DeleteCourse(c.UserContext(), id); err != nil {
		return helpers.Error(c, err)
	}
	_ = h.store.RefreshCourses(c.UserContext(), h.client)
	return c.JSON(fiber.Map{"success": true, "id": id})
}
