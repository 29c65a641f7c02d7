package repository

import (
	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
)

// LedgerRow is a transaction joined with the current name of its product.
// ProductName is empty for orphaned rows.
type LedgerRow struct {
	TransactionID int64              `json:"transaction_id"`
	ProductID     int64              `json:"product_id"`
	ProductName   string             `json:"product_name"`
	Type          model.MovementType `json:"type"`
	Quantity      int                `json:"quantity"`
	Operator      string             `json:"operator"`
	Date          string             `json:"date"`
}

// DateRange is an inclusive [Start, End] calendar-date window in YYYY-MM-DD.
type DateRange struct {
	Start string
	End   string
}

// OperatorStat aggregates outbound movements of one product per operator.
type OperatorStat struct {
	Operator      string `json:"operator"`
	TotalQuantity int    `json:"total_quantity"`
	Count         int    `json:"count"`
}

// ProductStat aggregates outbound movements of one operator per product.
type ProductStat struct {
	ProductID     int64  `json:"product_id"`
	ProductName   string `json:"product_name"`
	TotalQuantity int    `json:"total_quantity"`
	Count         int    `json:"count"`
}

// StatTotals is the ungrouped sum and count over the same filter as the
// grouped rows it accompanies.
type StatTotals struct {
	TotalQuantity int `json:"total_quantity"`
	Count         int `json:"count"`
}

type TransactionRepository interface {
	Create(tx *gorm.DB, t *model.Transaction) error
	ListWithProduct() ([]LedgerRow, error)
	Relink(tx *gorm.DB, oldProductID, newProductID int64) error
	OutboundByOperator(productID int64, rng *DateRange) ([]OperatorStat, StatTotals, error)
	OutboundByProduct(operator string, rng DateRange) ([]ProductStat, StatTotals, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// Create runs inside the caller's transaction: a movement row only exists
// together with its paired quantity update.
func (r *transactionRepo) Create(tx *gorm.DB, t *model.Transaction) error {
	return tx.Create(t).Error
}

// ListWithProduct returns the full ledger, newest first. Ties on the date are
// broken by id descending, which is insertion order.
func (r *transactionRepo) ListWithProduct() ([]LedgerRow, error) {
	var results []LedgerRow

	rows, err := r.db.Table("transactions t").
		Select("t.id, t.product_id, COALESCE(p.name, '') as product_name, t.type, t.quantity, t.operator, t.date").
		Joins("LEFT JOIN products p ON p.id = t.product_id").
		Order("t.date DESC, t.id DESC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row LedgerRow
		if err := rows.Scan(&row.TransactionID, &row.ProductID, &row.ProductName,
			&row.Type, &row.Quantity, &row.Operator, &row.Date); err != nil {
			return nil, err
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// Relink rewrites the weak product reference of every transaction when a
// product's id changes. Runs in the caller's transaction together with the
// product update itself.
func (r *transactionRepo) Relink(tx *gorm.DB, oldProductID, newProductID int64) error {
	return tx.Model(&model.Transaction{}).
		Where("product_id = ?", oldProductID).
		Update("product_id", newProductID).Error
}

// OutboundByOperator groups a product's outbound movements per operator,
// largest total first. With rng == nil it covers all time and excludes the
// empty operator bucket (the inbound default) from both the rows and the
// totals; with a range it filters by date only.
func (r *transactionRepo) OutboundByOperator(productID int64, rng *DateRange) ([]OperatorStat, StatTotals, error) {
	var (
		stats  []OperatorStat
		totals StatTotals
	)

	grouped := r.db.Model(&model.Transaction{}).
		Select("operator, COALESCE(SUM(quantity), 0) as total_quantity, COUNT(*) as count").
		Where("product_id = ? AND type = ?", productID, model.TxOut)
	total := r.db.Model(&model.Transaction{}).
		Select("COALESCE(SUM(quantity), 0) as total_quantity, COUNT(*) as count").
		Where("product_id = ? AND type = ?", productID, model.TxOut)

	if rng == nil {
		grouped = grouped.Where("operator != ''")
		total = total.Where("operator != ''")
	} else {
		grouped = grouped.Where("date BETWEEN ? AND ?", rng.Start, rng.End)
		total = total.Where("date BETWEEN ? AND ?", rng.Start, rng.End)
	}

	rows, err := grouped.Group("operator").Order("total_quantity DESC").Rows()
	if err != nil {
		return nil, totals, err
	}
	defer rows.Close()

	for rows.Next() {
		var s OperatorStat
		if err := rows.Scan(&s.Operator, &s.TotalQuantity, &s.Count); err != nil {
			return nil, totals, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, totals, err
	}

	if err := total.Row().Scan(&totals.TotalQuantity, &totals.Count); err != nil {
		return nil, totals, err
	}

	return stats, totals, nil
}

// OutboundByProduct groups one operator's outbound movements per product over
// an inclusive date range, largest total first. Orphaned product references
// still aggregate, with an empty name.
func (r *transactionRepo) OutboundByProduct(operator string, rng DateRange) ([]ProductStat, StatTotals, error) {
	var (
		stats  []ProductStat
		totals StatTotals
	)

	rows, err := r.db.Table("transactions t").
		Select("t.product_id, COALESCE(p.name, '') as product_name, COALESCE(SUM(t.quantity), 0) as total_quantity, COUNT(*) as count").
		Joins("LEFT JOIN products p ON p.id = t.product_id").
		Where("t.operator = ? AND t.type = ? AND t.date BETWEEN ? AND ?", operator, model.TxOut, rng.Start, rng.End).
		Group("t.product_id, p.name").
		Order("total_quantity DESC").
		Rows()
	if err != nil {
		return nil, totals, err
	}
	defer rows.Close()

	for rows.Next() {
		var s ProductStat
		if err := rows.Scan(&s.ProductID, &s.ProductName, &s.TotalQuantity, &s.Count); err != nil {
			return nil, totals, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, totals, err
	}

	err = r.db.Model(&model.Transaction{}).
		Select("COALESCE(SUM(quantity), 0) as total_quantity, COUNT(*) as count").
		Where("operator = ? AND type = ? AND date BETWEEN ? AND ?", operator, model.TxOut, rng.Start, rng.End).
		Row().Scan(&totals.TotalQuantity, &totals.Count)
	if err != nil {
		return nil, totals, err
	}

	return stats, totals, nil
}
