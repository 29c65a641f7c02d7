package repository

import (
	"testing"

	"go-warehouse-ws/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory store. One connection keeps the memory
// database alive and pinned to this test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.Transaction{}))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, id int64, name string, quantity int) {
	t.Helper()
	require.NoError(t, db.Create(&model.Product{ID: id, Name: name, Quantity: quantity}).Error)
}

func seedMovement(t *testing.T, db *gorm.DB, productID int64, typ model.MovementType, qty int, operator, date string) {
	t.Helper()
	require.NoError(t, db.Create(&model.Transaction{
		ProductID: productID,
		Type:      typ,
		Quantity:  qty,
		Operator:  operator,
		Date:      date,
	}).Error)
}
