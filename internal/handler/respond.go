package handler

import (
	"go-warehouse-ws/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// fail maps the error taxonomy onto HTTP statuses. Unclassified errors are
// reported generically rather than propagated.
func fail(c *fiber.Ctx, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case apperr.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case apperr.KindConflict:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case apperr.KindPersistence:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}
