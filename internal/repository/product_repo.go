package repository

import (
	"errors"

	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id int64) (*model.Product, error)
	FindByName(name string) (*model.Product, error)
	UpdateFields(tx *gorm.DB, id int64, fields map[string]interface{}) error
	UpdateQuantity(tx *gorm.DB, id int64, newQuantity int) error
	Delete(id int64) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("id ASC").Find(&products).Error
	return products, err
}

// FindByID returns (nil, nil) when no product carries the id, so callers can
// distinguish "missing" from a store failure.
func (r *productRepo) FindByID(id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByName matches the name exactly and case-sensitively, like the unique
// index it backs. Returns (nil, nil) when absent.
func (r *productRepo) FindByName(name string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateFields applies the given column map inside the caller's transaction,
// so a multi-field edit commits or rolls back as one unit.
func (r *productRepo) UpdateFields(tx *gorm.DB, id int64, fields map[string]interface{}) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// UpdateQuantity takes the caller's transaction so the stock change can pair
// atomically with its movement record.
func (r *productRepo) UpdateQuantity(tx *gorm.DB, id int64, newQuantity int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("quantity", newQuantity).Error
}

func (r *productRepo) Delete(id int64) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}
