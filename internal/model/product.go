package model

// Product is a catalog entry. The ID is assigned by the user rather than the
// database, and Quantity is maintained exclusively through recorded stock
// movements (starts at 0 on creation, never negative).
type Product struct {
	ID       int64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name     string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Quantity int      `gorm:"not null;default:0" json:"quantity"`
	Price    *float64 `json:"price"`
	Category *string  `gorm:"type:varchar(100)" json:"category"`
}

// TableName specifies the table name for GORM
func (Product) TableName() string {
	return "products"
}
