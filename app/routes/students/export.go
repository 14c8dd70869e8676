package students

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"college-admin/app/enrollment"
	"college-admin/app/routes/helpers"
)

// exportHeaders is the column set the records screen has always exported.
var exportHeaders = []string{"Name", "Course", "Batch", "Year", "Semester", "Mobile", "Email"}

// ExportCSVAPI streams the filtered student table as a CSV download. The
// UTF-8 BOM is kept so spreadsheet imports detect the encoding.
func (h *Handler) ExportCSVAPI(c *fiber.Ctx) error {
	items, err := h.cachedStudents(c)
	if err != nil {
		return helpers.Error(c, err)
	}
	filtered := enrollment.FilterStudents(items, filterFromQuery(c))

	var buf bytes.Buffer
	buf.WriteString("\uFEFF")
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, s := range filtered {
		record := []string{
			s.Name, s.Course, s.Batch,
			string(s.Year), string(s.Semester),
			s.Mobile, s.Email,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="student_records.csv"`)
	return c.Send(buf.Bytes())
}
