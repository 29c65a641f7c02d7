package handler

import (
	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	service service.ExportService
}

func NewExportHandler(s service.ExportService) *ExportHandler {
	return &ExportHandler{service: s}
}

// ExportProducts writes the catalog workbook. With ?path= it saves to that
// local file (the deployment is a single-user desktop machine); without it
// the workbook streams back as an attachment.
// GET /api/v1/export/products?path=...
func (h *ExportHandler) ExportProducts(c *fiber.Ctx) error {
	if path := c.Query("path"); path != "" {
		if err := h.service.ExportProducts(path); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Export complete", "path": path})
	}

	f, err := h.service.ProductsWorkbook()
	if err != nil {
		return fail(c, err)
	}
	return sendWorkbook(c, f, "products.xlsx")
}

// ExportTransactions writes the ledger workbook, joined with product names
// and ordered newest first.
// GET /api/v1/export/transactions?path=...
func (h *ExportHandler) ExportTransactions(c *fiber.Ctx) error {
	if path := c.Query("path"); path != "" {
		if err := h.service.ExportTransactions(path); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Export complete", "path": path})
	}

	f, err := h.service.TransactionsWorkbook()
	if err != nil {
		return fail(c, err)
	}
	return sendWorkbook(c, f, "transactions.xlsx")
}

func sendWorkbook(c *fiber.Ctx, f *excelize.File, filename string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to serialize workbook"})
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
