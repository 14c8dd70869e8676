package students

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"college-admin/app/enrollment"
	"college-admin/app/models"
	"college-admin/app/routes/helpers"
	"college-admin/app/state"
)

// cachedStudents serves the student collection from the store, fetching
// it once when the cache is cold.
func (h *Handler) cachedStudents(c *fiber.Ctx) ([]models.Student, error) {
	items, status := h.store.Students()
	if status == state.StatusSucceeded {
		return items, nil
	}
	if err := h.store.RefreshStudents(c.UserContext(), h.client); err != nil {
		return nil, err
	}
	items, _ = h.store.Students()
	return items, nil
}

// filterFromQuery builds the conjunctive student filter from the query
// string: course_id, batch_id, year, semester, name.
func filterFromQuery(c *fiber.Ctx) enrollment.StudentFilter {
	return enrollment.StudentFilter{
		CourseID: c.QueryInt("course_id", 0),
		BatchID:  c.QueryInt("batch_id", 0),
		Year:     models.Year(c.Query("year")),
		Semester: models.Semester(c.Query("semester")),
		Name:     c.Query("name"),
	}
}

// ListAPI returns all students.
func (h *Handler) ListAPI(c *fiber.Ctx) error {
	items, err := h.cachedStudents(c)
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(items)
}

// TableAPI returns students filtered for table display.
func (h *Handler) TableAPI(c *fiber.Ctx) error {
	items, err := h.cachedStudents(c)
	if err != nil {
		return helpers.Error(c, err)
	}
	filtered := enrollment.FilterStudents(items, filterFromQuery(c))
	return c.JSON(fiber.Map{
		"students": filtered,
		"count":    len(filtered),
	})
}

// GetAPI returns one student by id, bypassing the cache.
func (h *Handler) GetAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid student id",
		})
	}
	student, err := h.client.GetStudent(c.UserContext(), id)
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(student)
}

// AdmitAPI admits a student, optionally recording the seed payment. A
// created student whose seed payment failed is reported as a partial
// success; the operator decides what to do, the console never retries.
func (h *Handler) AdmitAPI(c *fiber.Ctx) error {
	var in enrollment.AdmissionInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	student, err := h.manager.Admit(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, enrollment.ErrSeedPaymentFailed) {
			_ = h.store.RefreshStudents(c.UserContext(), h.client)
			return c.Status(fiber.StatusCreated).JSON(fiber.Map{
				"success": true,
				"student": student,
				"warning": err.Error(),
			})
		}
		return helpers.Error(c, err)
	}

	_ = h.store.RefreshStudents(c.UserContext(), h.client)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"student": student,
	})
}

// UpdateAPI applies field corrections to a student record.
func (h *Handler) UpdateAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid student id",
		})
	}
	var in models.StudentInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}
	if (in.Year != "" && !in.Year.Valid()) || (in.Semester != "" && !in.Semester.Valid()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "unknown year or semester",
		})
	}

	student, err := h.client.UpdateStudent(c.UserContext(), id, in)
	if err != nil {
		return helpers.Error(c, err)
	}
	_ = h.store.RefreshStudents(c.UserContext(), h.client)
	return c.JSON(student)
}

// DeleteAPI removes a single student record.
func (h *Handler) DeleteAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid student id",
		})
	}
	if err := h.client.DeleteStudent(c.UserContext(), id); err != nil {
		return helpers.Error(c, err)
	}
	_ = h.store.RefreshStudents(c.UserContext(), h.client)
	return c.JSON(fiber.Map{"success": true, "id": id})
}

// BulkUploadAPI forwards a CSV of student rows to the backend and relays
// the tally plus the per-row detail. Both must be rendered: the counts
// alone hide which rows failed.
func (h *Handler) BulkUploadAPI(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "csv file is required",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "could not read uploaded file",
		})
	}
	defer file.Close()

	result, err := h.client.BulkUploadStudents(c.UserContext(), fileHeader.Filename, file)
	if err != nil {
		return helpers.Error(c, err)
	}
	_ = h.store.RefreshStudents(c.UserContext(), h.client)
	return c.JSON(result)
}
