package services

import (
	"context"
	"fmt"

	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/ports"
)

// AdjustmentService serves the persisted adjustment history.
type AdjustmentService struct {
	adjustmentRepo ports.AdjustmentRepository
}

// NewAdjustmentService creates a new AdjustmentService.
func NewAdjustmentService(adjustmentRepo ports.AdjustmentRepository) *AdjustmentService {
	return &AdjustmentService{adjustmentRepo: adjustmentRepo}
}

// ListAdjustments returns the most recent adjustment records, optionally
// filtered by currency. An empty currencyID means all currencies.
func (s *AdjustmentService) ListAdjustments(ctx context.Context, currencyID domain.CurrencyID, limit int) ([]domain.AdjustmentRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var (
		records []domain.AdjustmentRecord
		err     error
	)
	if currencyID == "" {
		records, err = s.adjustmentRepo.ListAdjustments(ctx, limit)
	} else {
		records, err = s.adjustmentRepo.ListAdjustmentsByCurrency(ctx, currencyID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments in service: %w", err)
	}
	return records, nil
}
