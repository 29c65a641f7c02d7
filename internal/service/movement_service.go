package service

import (
	"errors"
	"strconv"
	"strings"

	"go-warehouse-ws/internal/apperr"
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/ws"
	"go-warehouse-ws/pkg/validator"

	"gorm.io/gorm"
)

type MovementService interface {
	RecordMovement(req *MovementRequest) (*model.Transaction, error)
	ListTransactions() ([]LedgerEntry, error)
}

// MovementRequest carries the raw form values of a stock movement.
type MovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  string `json:"quantity" validate:"required"`
	Operator  string `json:"operator"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Date      string `json:"date" validate:"required,isodate"`
}

// LedgerEntry is a joined transaction row tagged with its 1-based display
// sequence number, recomputed on every fetch.
type LedgerEntry struct {
	Seq int `json:"seq"`
	repository.LedgerRow
}

type movementService struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	db          *gorm.DB
	hub         *ws.Hub
}

func NewMovementService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, db *gorm.DB, hub *ws.Hub) MovementService {
	return &movementService{
		productRepo: pRepo,
		txRepo:      tRepo,
		db:          db,
		hub:         hub,
	}
}

// RecordMovement applies the signed quantity delta to the product and appends
// the immutable transaction row as one atomic unit: both writes commit or
// neither does.
func (s *movementService) RecordMovement(req *MovementRequest) (*model.Transaction, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
	}

	productID, err := parseProductID(req.ProductID)
	if err != nil {
		return nil, err
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(req.Quantity))
	if err != nil {
		return nil, apperr.Validation("quantity must be an integer")
	}
	if quantity <= 0 {
		return nil, apperr.Validation("quantity must be positive")
	}

	movementType := model.MovementType(req.Type)
	operator := strings.TrimSpace(req.Operator)
	if movementType == model.TxOut && operator == "" {
		return nil, apperr.Validation("operator is required for outbound movements")
	}
	// Inbound movements may omit the operator; it normalizes to "".

	record := &model.Transaction{
		ProductID: productID,
		Type:      movementType,
		Quantity:  quantity,
		Operator:  operator,
		Date:      req.Date,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("product %d not found", productID)
			}
			return apperr.Persistence("failed to load product", err)
		}

		newQuantity := product.Quantity
		if movementType == model.TxIn {
			newQuantity += quantity
		} else {
			if quantity > product.Quantity {
				return apperr.Conflict("insufficient stock: %d on hand, %d requested", product.Quantity, quantity)
			}
			newQuantity -= quantity
		}

		if err := s.productRepo.UpdateQuantity(tx, product.ID, newQuantity); err != nil {
			return apperr.Persistence("failed to update stock", err)
		}
		if err := s.txRepo.Create(tx, record); err != nil {
			return apperr.Persistence("failed to record movement", err)
		}
		return nil
	})
	if err != nil {
		if apperr.KindOf(err) != 0 {
			return nil, err
		}
		return nil, apperr.Persistence("movement failed", err)
	}

	go s.hub.NotifyRefresh(ws.ScopeProducts, ws.ScopeTransactions)

	return record, nil
}

func (s *movementService) ListTransactions() ([]LedgerEntry, error) {
	rows, err := s.txRepo.ListWithProduct()
	if err != nil {
		return nil, apperr.Persistence("failed to list transactions", err)
	}

	entries := make([]LedgerEntry, len(rows))
	for i, row := range rows {
		entries[i] = LedgerEntry{Seq: i + 1, LedgerRow: row}
	}
	return entries, nil
}
