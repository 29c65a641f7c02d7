package handler

import (
	"strconv"

	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.CatalogService
}

func NewProductHandler(s service.CatalogService) *ProductHandler {
	return &ProductHandler{service: s}
}

// CreateProduct handles catalog creation
// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.CreateProduct(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

// EditProduct applies a diff-based update to a previously selected product
// PUT /api/v1/products/:id
func (h *ProductHandler) EditProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req service.EditProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.service.EditProduct(id, &req)
	if err != nil {
		return fail(c, err)
	}
	if !result.Changed {
		return c.JSON(fiber.Map{"message": "Nothing to update"})
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": result.Product})
}

// DeleteProduct removes a product; its transactions stay behind
// DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// GetProducts lists the catalog with display sequence numbers
// GET /api/v1/products
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// Lookup resolves one side of the id/name pair for the UI's auto-fill.
// Exactly one of the two query params is consulted per call, which keeps the
// field synchronization one-directional.
// GET /api/v1/products/lookup?id=... | ?name=...
func (h *ProductHandler) Lookup(c *fiber.Ctx) error {
	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Product ID must be numeric"})
		}
		product, err := h.service.LookupByID(id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"id": product.ID, "name": product.Name})
	}

	if name := c.Query("name"); name != "" {
		product, err := h.service.LookupByName(name)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"id": product.ID, "name": product.Name})
	}

	return c.Status(400).JSON(fiber.Map{"error": "Provide either id or name"})
}
