package service

import (
	"fmt"

	"go-warehouse-ws/internal/apperr"
	"go-warehouse-ws/internal/repository"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single sheet every export writes.
const SheetName = "Data"

type ExportService interface {
	ProductsWorkbook() (*excelize.File, error)
	TransactionsWorkbook() (*excelize.File, error)
	ExportProducts(path string) error
	ExportTransactions(path string) error
}

type exportService struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
}

func NewExportService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository) ExportService {
	return &exportService{
		productRepo: pRepo,
		txRepo:      tRepo,
	}
}

// ProductsWorkbook materializes the full catalog into a workbook: header row
// plus one row per product. Absent price/category render as empty cells.
func (s *exportService) ProductsWorkbook() (*excelize.File, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, apperr.Persistence("failed to load products for export", err)
	}

	headers := []string{"Product ID", "Name", "Quantity", "Price", "Category"}
	rows := make([][]interface{}, len(products))
	for i, p := range products {
		price := ""
		if p.Price != nil {
			price = formatPrice(p.Price)
		}
		category := ""
		if p.Category != nil {
			category = *p.Category
		}
		rows[i] = []interface{}{p.ID, p.Name, p.Quantity, price, category}
	}

	return buildWorkbook(headers, rows)
}

// TransactionsWorkbook materializes the ledger joined with current product
// names, newest first (same order as the ledger view).
func (s *exportService) TransactionsWorkbook() (*excelize.File, error) {
	ledger, err := s.txRepo.ListWithProduct()
	if err != nil {
		return nil, apperr.Persistence("failed to load transactions for export", err)
	}

	headers := []string{"Transaction ID", "Product Name", "Type", "Quantity", "Operator", "Date"}
	rows := make([][]interface{}, len(ledger))
	for i, t := range ledger {
		rows[i] = []interface{}{t.TransactionID, t.ProductName, string(t.Type), t.Quantity, t.Operator, t.Date}
	}

	return buildWorkbook(headers, rows)
}

func (s *exportService) ExportProducts(path string) error {
	f, err := s.ProductsWorkbook()
	if err != nil {
		return err
	}
	return saveWorkbook(f, path)
}

func (s *exportService) ExportTransactions(path string) error {
	f, err := s.TransactionsWorkbook()
	if err != nil {
		return err
	}
	return saveWorkbook(f, path)
}

// buildWorkbook writes a single "Data" sheet with a bold centered header row
// and column widths sized to the longest cell in each column.
func buildWorkbook(headers []string, rows [][]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, apperr.Persistence("failed to build workbook", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, apperr.Persistence("failed to build workbook", err)
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, apperr.Persistence("failed to build workbook", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, apperr.Persistence("failed to build workbook", err)
	}
	firstCell, _ := excelize.CoordinatesToCellName(1, 1)
	lastCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(SheetName, firstCell, lastCell, headerStyle); err != nil {
		return nil, apperr.Persistence("failed to build workbook", err)
	}

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, apperr.Persistence("failed to build workbook", err)
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, apperr.Persistence("failed to build workbook", err)
			}
		}
	}

	for c := range headers {
		width := len(headers[c])
		for _, row := range rows {
			if l := len(fmt.Sprint(row[c])); l > width {
				width = l
			}
		}
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return nil, apperr.Persistence("failed to build workbook", err)
		}
		if err := f.SetColWidth(SheetName, col, col, float64(width+2)); err != nil {
			return nil, apperr.Persistence("failed to build workbook", err)
		}
	}

	return f, nil
}

func saveWorkbook(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		return apperr.Persistence("failed to write workbook", err)
	}
	return nil
}
