package service

import (
	"testing"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type fixture struct {
	db          *gorm.DB
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	catalog     CatalogService
	movements   MovementService
	stats       StatsService
	export      ExportService
}

// newFixture wires the full service stack over a fresh in-memory store, with
// no websocket hub (NotifyRefresh is a no-op on nil).
func newFixture(t *testing.T) *fixture {
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

	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	return &fixture{
		db:          db,
		productRepo: productRepo,
		txRepo:      txRepo,
		catalog:     NewCatalogService(productRepo, txRepo, db, nil),
		movements:   NewMovementService(productRepo, txRepo, db, nil),
		stats:       NewStatsService(txRepo),
		export:      NewExportService(productRepo, txRepo),
	}
}

func (f *fixture) mustCreateProduct(t *testing.T, id, name, price, category string) *model.Product {
	t.Helper()
	product, err := f.catalog.CreateProduct(&CreateProductRequest{
		ID: id, Name: name, Price: price, Category: category,
	})
	require.NoError(t, err)
	return product
}

func (f *fixture) mustRecordMovement(t *testing.T, productID, qty, operator, typ, date string) *model.Transaction {
	t.Helper()
	record, err := f.movements.RecordMovement(&MovementRequest{
		ProductID: productID, Quantity: qty, Operator: operator, Type: typ, Date: date,
	})
	require.NoError(t, err)
	return record
}

func (f *fixture) productQuantity(t *testing.T, id int64) int {
	t.Helper()
	product, err := f.productRepo.FindByID(id)
	require.NoError(t, err)
	require.NotNil(t, product)
	return product.Quantity
}
