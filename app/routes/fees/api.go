package fees

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"college-admin/app/enrollment"
	"college-admin/app/models"
	"college-admin/app/routes/helpers"
)

// HistoryAPI returns the student's ledger. Entries come back in stored
// order from the backend; they are sorted by date here for display only.
func (h *Handler) HistoryAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid student id",
		})
	}

	history, err := h.manager.FeesHistory(c.UserContext(), id)
	if err != nil {
		return helpers.Error(c, err)
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date < history[j].Date
	})
	return c.JSON(history)
}

// SummaryAPI recomputes the student's paid total and due balance from the
// ledger. Nothing is cached, so a just-deleted payment is reflected
// immediately.
func (h *Handler) SummaryAPI(c *fiber.Ctx) error {
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
	summary, err := h.manager.Summary(c.UserContext(), *student)
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"student_id": id,
		"fees_total": student.FeesTotal,
		"total_paid": summary.TotalPaid,
		"due":        summary.Due,
	})
}

// AddPaymentAPI appends a ledger entry for the student.
func (h *Handler) AddPaymentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid student id",
		})
	}
	var in models.PaymentInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	payment, err := h.manager.AddPayment(c.UserContext(), id, in)
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// DeletePaymentAPI removes a ledger entry. The owning student's totals
// correct themselves on the next read.
func (h *Handler) DeletePaymentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid payment id",
		})
	}
	if err := h.manager.DeletePayment(c.UserContext(), id); err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "id": id})
}

// ReportAPI returns the aggregate collections report. Ledger entries of
// passed-out students remain visible here.
func (h *Handler) ReportAPI(c *fiber.Ctx) error {
	filter := models.PaymentReportFilter{
		From:     c.Query("from"),
		To:       c.Query("to"),
		CourseID: c.QueryInt("course_id", 0),
		BatchID:  c.QueryInt("batch_id", 0),
		Year:     models.Year(c.Query("year")),
		Semester: models.Semester(c.Query("semester")),
	}

	rows, err := h.client.PaymentsReport(c.UserContext(), filter)
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"payments":  rows,
		"count":     len(rows),
		"collected": enrollment.TotalPaid(reportAmounts(rows)),
	})
}

// reportAmounts adapts report rows into ledger entries so the shared
// total helper can sum them.
func reportAmounts(rows []models.PaymentReportRow) []models.FeePayment {
	payments := make([]models.FeePayment, 0, len(rows))
	for _, r := range rows {
		payments = append(payments, models.FeePayment{Amount: r.Amount})
	}
	return payments
}
