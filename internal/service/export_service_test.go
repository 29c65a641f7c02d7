package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestProductsWorkbookEmptyCatalog(t *testing.T) {
	f := newFixture(t)

	wb, err := f.export.ProductsWorkbook()
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1, "an empty catalog still exports its header row")
	assert.Equal(t, []string{"Product ID", "Name", "Quantity", "Price", "Category"}, rows[0])
}

func TestProductsWorkbookRows(t *testing.T) {
	f := newFixture(t)
	f.mustCreateProduct(t, "1", "Widget", "19.9", "Tools")
	f.mustCreateProduct(t, "2", "Gadget", "", "")
	f.mustRecordMovement(t, "1", "30", "", "IN", "2025-01-01")

	wb, err := f.export.ProductsWorkbook()
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Widget", rows[1][1])
	assert.Equal(t, "30", rows[1][2])
	assert.Equal(t, "19.9", rows[1][3])
	assert.Equal(t, "Tools", rows[1][4])

	// GetRows trims trailing empty cells, so absent optionals shorten the row.
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "Gadget", rows[2][1])
	assert.Equal(t, "0", rows[2][2])
}

func TestTransactionsWorkbookOrder(t *testing.T) {
	f := newFixture(t)
	f.mustCreateProduct(t, "1", "Widget", "", "")
	f.mustRecordMovement(t, "1", "10", "", "IN", "2025-01-01")
	f.mustRecordMovement(t, "1", "4", "Alice", "OUT", "2025-01-05")

	wb, err := f.export.TransactionsWorkbook()
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Transaction ID", "Product Name", "Type", "Quantity", "Operator", "Date"}, rows[0])

	// Newest movement first, matching the ledger view.
	assert.Equal(t, "OUT", rows[1][2])
	assert.Equal(t, "Alice", rows[1][4])
	assert.Equal(t, "2025-01-05", rows[1][5])
	assert.Equal(t, "IN", rows[2][2])
	assert.Equal(t, "2025-01-01", rows[2][5])
}

func TestWorkbookHeaderStyleAndWidths(t *testing.T) {
	f := newFixture(t)
	f.mustCreateProduct(t, "1", "A product with a fairly long name", "", "")

	wb, err := f.export.ProductsWorkbook()
	require.NoError(t, err)
	defer wb.Close()

	styleID, err := wb.GetCellStyle(SheetName, "A1")
	require.NoError(t, err)
	style, err := wb.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
	require.NotNil(t, style.Alignment)
	assert.Equal(t, "center", style.Alignment.Horizontal)

	// The Name column is widened past its header to fit the longest value.
	width, err := wb.GetColWidth(SheetName, "B")
	require.NoError(t, err)
	assert.Equal(t, float64(len("A product with a fairly long name")+2), width)
}

func TestExportProductsSavesFile(t *testing.T) {
	f := newFixture(t)
	f.mustCreateProduct(t, "1", "Widget", "2.5", "Tools")

	path := filepath.Join(t.TempDir(), "products.xlsx")
	require.NoError(t, f.export.ExportProducts(path))

	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Widget", rows[1][1])
}

func TestExportTransactionsSavesFile(t *testing.T) {
	f := newFixture(t)
	f.mustCreateProduct(t, "1", "Widget", "", "")
	f.mustRecordMovement(t, "1", "5", "", "IN", "2025-01-01")

	path := filepath.Join(t.TempDir(), "transactions.xlsx")
	require.NoError(t, f.export.ExportTransactions(path))

	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Widget", rows[1][1])
	assert.Equal(t, "IN", rows[1][2])
}
