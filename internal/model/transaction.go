package model

type MovementType string

const (
	TxIn  MovementType = "IN"
	TxOut MovementType = "OUT"
)

// Transaction is an immutable record of a single stock movement. ProductID
// is a weak reference: no foreign key is declared and deleting a product
// leaves its transactions in place as orphans.
type Transaction struct {
	ID        int64        `gorm:"primaryKey" json:"id"`
	ProductID int64        `gorm:"not null;index" json:"product_id"`
	Type      MovementType `gorm:"type:varchar(10);not null" json:"type"`
	Quantity  int          `gorm:"not null" json:"quantity"`
	Operator  string       `gorm:"not null;default:''" json:"operator"`
	Date      string       `gorm:"type:varchar(10);not null;index" json:"date"` // YYYY-MM-DD
}

// TableName specifies the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}
