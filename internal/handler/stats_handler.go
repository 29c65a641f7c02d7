package handler

import (
	"net/url"
	"strconv"

	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(s service.StatsService) *StatsHandler {
	return &StatsHandler{service: s}
}

// GetProductOperatorStats returns one product's outbound totals per operator.
// Without start/end it covers all time (excluding the empty operator);
// with both it restricts to the inclusive range.
// GET /api/v1/stats/products/:id/operators?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *StatsHandler) GetProductOperatorStats(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	report, err := h.service.ProductOperatorStats(id, c.Query("start"), c.Query("end"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(report)
}

// GetOperatorProductStats returns one operator's outbound totals per product
// over a required date range.
// GET /api/v1/stats/operators/:operator/products?start=...&end=...
func (h *StatsHandler) GetOperatorProductStats(c *fiber.Ctx) error {
	operator := c.Params("operator")
	if decoded, err := url.PathUnescape(operator); err == nil {
		operator = decoded
	}

	report, err := h.service.OperatorProductStats(operator, c.Query("start"), c.Query("end"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(report)
}
