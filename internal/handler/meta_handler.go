package handler

import (
	"go-warehouse-ws/internal/firstrun"

	"github.com/gofiber/fiber/v2"
)

type MetaHandler struct {
	firstRun bool
}

func NewMetaHandler(firstRun bool) *MetaHandler {
	return &MetaHandler{firstRun: firstRun}
}

// About returns application info plus the disclaimer text the UI shows in
// its about dialog (and unprompted on the very first run).
// GET /api/v1/about
func (h *MetaHandler) About(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":       "Warehouse Management System",
		"version":    "1.0",
		"first_run":  h.firstRun,
		"disclaimer": firstrun.Disclaimer,
	})
}
