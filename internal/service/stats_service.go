package service

import (
	"strings"
	"time"

	"go-warehouse-ws/internal/apperr"
	"go-warehouse-ws/internal/repository"
)

type StatsService interface {
	ProductOperatorStats(productID int64, start, end string) (*OperatorStatsReport, error)
	OperatorProductStats(operator, start, end string) (*ProductStatsReport, error)
}

// OperatorStatsReport: one product's outbound movements grouped by operator,
// plus the ungrouped totals over the same filter.
type OperatorStatsReport struct {
	Rows   []repository.OperatorStat `json:"rows"`
	Totals repository.StatTotals     `json:"totals"`
}

// ProductStatsReport: one operator's outbound movements grouped by product.
type ProductStatsReport struct {
	Rows   []repository.ProductStat `json:"rows"`
	Totals repository.StatTotals    `json:"totals"`
}

type statsService struct {
	txRepo repository.TransactionRepository
}

func NewStatsService(txRepo repository.TransactionRepository) StatsService {
	return &statsService{txRepo: txRepo}
}

// ProductOperatorStats serves both per-product views: with empty start and
// end it covers all time and leaves out the empty-operator bucket; with both
// set it restricts to the inclusive date range instead.
func (s *statsService) ProductOperatorStats(productID int64, start, end string) (*OperatorStatsReport, error) {
	rng, err := parseDateRange(start, end)
	if err != nil {
		return nil, err
	}

	rows, totals, err := s.txRepo.OutboundByOperator(productID, rng)
	if err != nil {
		return nil, apperr.Persistence("failed to aggregate operator stats", err)
	}

	return &OperatorStatsReport{Rows: rows, Totals: totals}, nil
}

// OperatorProductStats requires the full date range, mirroring the operator
// drill-down which always carries one.
func (s *statsService) OperatorProductStats(operator, start, end string) (*ProductStatsReport, error) {
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return nil, apperr.Validation("operator must not be empty")
	}

	rng, err := parseDateRange(start, end)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, apperr.Validation("start and end dates are required")
	}

	rows, totals, err := s.txRepo.OutboundByProduct(operator, *rng)
	if err != nil {
		return nil, apperr.Persistence("failed to aggregate product stats", err)
	}

	return &ProductStatsReport{Rows: rows, Totals: totals}, nil
}

// parseDateRange validates an optional [start, end] window. Both boundaries
// absent means "no filter" (nil range); anything partial or unparseable is a
// validation error, never a crash.
func parseDateRange(start, end string) (*repository.DateRange, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)

	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, apperr.Validation("both start and end dates are required")
	}
	for _, d := range []string{start, end} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, apperr.Validation("invalid date '%s', use YYYY-MM-DD", d)
		}
	}

	return &repository.DateRange{Start: start, End: end}, nil
}
