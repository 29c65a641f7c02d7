package service

import (
	"strconv"
	"strings"

	"go-warehouse-ws/internal/apperr"
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/ws"
	"go-warehouse-ws/pkg/validator"

	"gorm.io/gorm"
)

type CatalogService interface {
	CreateProduct(req *CreateProductRequest) (*model.Product, error)
	EditProduct(id int64, req *EditProductRequest) (*EditResult, error)
	DeleteProduct(id int64) error
	ListProducts() ([]ProductRow, error)
	LookupByID(id int64) (*model.Product, error)
	LookupByName(name string) (*model.Product, error)
}

// CreateProductRequest carries the raw form values. ID and Price arrive as
// strings because the UI submits free-text fields.
type CreateProductRequest struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

// EditProductRequest carries the current value of every form field for a
// previously selected product. The service diffs each field against the
// stored record and only changed fields enter the update.
type EditProductRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

// EditResult distinguishes a real update from the "nothing to update" no-op.
type EditResult struct {
	Changed bool           `json:"changed"`
	Product *model.Product `json:"product,omitempty"`
}

// ProductRow is a product tagged with its 1-based display sequence number,
// recomputed on every fetch.
type ProductRow struct {
	Seq int `json:"seq"`
	model.Product
}

type catalogService struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	db          *gorm.DB
	hub         *ws.Hub
}

func NewCatalogService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, db *gorm.DB, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo: pRepo,
		txRepo:      tRepo,
		db:          db,
		hub:         hub,
	}
}

func (s *catalogService) CreateProduct(req *CreateProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}

	id, err := parseProductID(req.ID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("product name must not be empty")
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	// Uniqueness of both id and name, checked before the insert so the
	// caller gets a precise message instead of a constraint error.
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, apperr.Persistence("failed to check product id", err)
	}
	if existing != nil {
		return nil, apperr.Validation("product ID %d already exists", id)
	}

	existing, err = s.productRepo.FindByName(name)
	if err != nil {
		return nil, apperr.Persistence("failed to check product name", err)
	}
	if existing != nil {
		return nil, apperr.Validation("product name '%s' already exists", name)
	}

	product := &model.Product{
		ID:       id,
		Name:     name,
		Quantity: 0,
		Price:    price,
		Category: optionalString(req.Category),
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, apperr.Persistence("failed to create product", err)
	}

	go s.hub.NotifyRefresh(ws.ScopeProducts)

	return product, nil
}

func (s *catalogService) EditProduct(id int64, req *EditProductRequest) (*EditResult, error) {
	stored, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, apperr.Persistence("failed to load product", err)
	}
	if stored == nil {
		return nil, apperr.NotFound("product %d not found", id)
	}

	updates := map[string]interface{}{}
	newID := stored.ID

	// Identifier: numeric, unique, and rewritten into every referencing
	// transaction when it changes.
	if idStr := strings.TrimSpace(req.ID); idStr != strconv.FormatInt(stored.ID, 10) {
		parsed, err := parseProductID(idStr)
		if err != nil {
			return nil, err
		}
		other, err := s.productRepo.FindByID(parsed)
		if err != nil {
			return nil, apperr.Persistence("failed to check product id", err)
		}
		if other != nil {
			return nil, apperr.Validation("product ID %d already exists", parsed)
		}
		updates["id"] = parsed
		newID = parsed
	}

	if name := strings.TrimSpace(req.Name); name != stored.Name {
		if name == "" {
			return nil, apperr.Validation("product name must not be empty")
		}
		other, err := s.productRepo.FindByName(name)
		if err != nil {
			return nil, apperr.Persistence("failed to check product name", err)
		}
		if other != nil && other.ID != stored.ID {
			return nil, apperr.Validation("product name '%s' already exists", name)
		}
		updates["name"] = name
	}

	// An emptied price field is a valid "clear to absent" edit.
	if priceStr := strings.TrimSpace(req.Price); priceStr != formatPrice(stored.Price) {
		if priceStr == "" {
			updates["price"] = nil
		} else {
			price, err := parsePrice(priceStr)
			if err != nil {
				return nil, err
			}
			updates["price"] = *price
		}
	}

	storedCategory := ""
	if stored.Category != nil {
		storedCategory = *stored.Category
	}
	if category := strings.TrimSpace(req.Category); category != storedCategory {
		if category == "" {
			updates["category"] = nil
		} else {
			updates["category"] = category
		}
	}

	if len(updates) == 0 {
		return &EditResult{Changed: false}, nil
	}

	// All changed fields and the cascading reference rewrite commit as one
	// unit, or not at all.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.UpdateFields(tx, stored.ID, updates); err != nil {
			return err
		}
		if newID != stored.ID {
			if err := s.txRepo.Relink(tx, stored.ID, newID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Persistence("failed to update product", err)
	}

	updated, err := s.productRepo.FindByID(newID)
	if err != nil {
		return nil, apperr.Persistence("failed to reload product", err)
	}

	go s.hub.NotifyRefresh(ws.ScopeProducts, ws.ScopeTransactions)

	return &EditResult{Changed: true, Product: updated}, nil
}

// DeleteProduct removes the product only. Referencing transactions are left
// in place as orphans: the ledger keeps its history.
func (s *catalogService) DeleteProduct(id int64) error {
	stored, err := s.productRepo.FindByID(id)
	if err != nil {
		return apperr.Persistence("failed to load product", err)
	}
	if stored == nil {
		return apperr.NotFound("product %d not found", id)
	}

	if err := s.productRepo.Delete(id); err != nil {
		return apperr.Persistence("failed to delete product", err)
	}

	go s.hub.NotifyRefresh(ws.ScopeProducts, ws.ScopeTransactions)

	return nil
}

func (s *catalogService) ListProducts() ([]ProductRow, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, apperr.Persistence("failed to list products", err)
	}

	rows := make([]ProductRow, len(products))
	for i, p := range products {
		rows[i] = ProductRow{Seq: i + 1, Product: p}
	}
	return rows, nil
}

func (s *catalogService) LookupByID(id int64) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, apperr.Persistence("failed to look up product", err)
	}
	if product == nil {
		return nil, apperr.NotFound("product %d not found", id)
	}
	return product, nil
}

func (s *catalogService) LookupByName(name string) (*model.Product, error) {
	product, err := s.productRepo.FindByName(name)
	if err != nil {
		return nil, apperr.Persistence("failed to look up product", err)
	}
	if product == nil {
		return nil, apperr.NotFound("product '%s' not found", name)
	}
	return product, nil
}

func parseProductID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("product ID must be a positive integer")
	}
	return id, nil
}

func parsePrice(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperr.Validation("price must be a number")
	}
	if price < 0 {
		return nil, apperr.Validation("price must not be negative")
	}
	return &price, nil
}

// formatPrice renders the stored price the way the UI displays it, so the
// edit diff compares like against like. Absent prices render as "".
func formatPrice(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func optionalString(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}
