// Package helpers maps application errors onto HTTP responses so every
// route package reports failures the same way.
package helpers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"college-admin/app/models"
)

// Error writes the JSON error response for err. Validation failures carry
// the field list; everything else surfaces the message verbatim. Nothing
// is retried on behalf of the operator.
func Error(c *fiber.Ctx, err error) error {
	var (
		validation *models.ValidationError
		conflict   *models.ConflictError
		notFound   *models.NotFoundError
		transport  *models.TransportError
	)

	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   validation.Error(),
			"fields":  validation.Fields,
		})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   notFound.Error(),
		})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   conflict.Error(),
		})
	case errors.As(err, &transport):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   transport.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
}
