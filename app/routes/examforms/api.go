package examforms

import (
	"mime/multipart"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"college-admin/app/routes/helpers"
)

// openUpload extracts the multipart file, assigning a generated name when
// the browser sent none. Content is not inspected; the document store
// only cares about the extension.
func openUpload(c *fiber.Ctx) (multipart.File, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	name := fileHeader.Filename
	if name == "" {
		name = uuid.New().String() + filepath.Ext(fileHeader.Filename)
	}
	return file, name, nil
}

// UploadExamFormAPI stores an exam form for the student and returns the
// stored filename.
func (h *Handler) UploadExamFormAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid student id",
		})
	}
	file, name, err := openUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "file is required",
		})
	}
	defer file.Close()

	result, err := h.client.UploadExamForm(c.UserContext(), id, name, file)
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(result)
}

// ExamFormStatusAPI lists the stored exam-form filenames for a student.
func (h *Handler) ExamFormStatusAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid student id",
		})
	}
	filenames, err := h.client.ExamFormStatus(c.UserContext(), id)
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(fiber.Map{"filenames": filenames})
}

// UploadDocumentAPI stores a student document keyed by doc_type.
func (h *Handler) UploadDocumentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid student id",
		})
	}
	docType := c.FormValue("doc_type")
	if docType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "doc_type is required",
		})
	}
	file, name, err := openUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "file is required",
		})
	}
	defer file.Close()

	result, err := h.client.UploadDocument(c.UserContext(), id, docType, name, file)
	if err != nil {
		return helpers.Error(c, err)
	}
	return c.JSON(result)
}
