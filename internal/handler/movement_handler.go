package handler

import (
	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MovementHandler struct {
	service service.MovementService
}

func NewMovementHandler(s service.MovementService) *MovementHandler {
	return &MovementHandler{service: s}
}

// RecordMovement records an inbound or outbound stock movement
// POST /api/v1/movements
func (h *MovementHandler) RecordMovement(c *fiber.Ctx) error {
	var req service.MovementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	record, err := h.service.RecordMovement(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Movement recorded", "data": record})
}

// GetTransactions lists the ledger joined with product names, newest first
// GET /api/v1/transactions
func (h *MovementHandler) GetTransactions(c *fiber.Ctx) error {
	entries, err := h.service.ListTransactions()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(entries)
}
