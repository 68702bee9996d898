package usecase

import (
	"context"
	"fmt"

	"github.com/pitwallhq/pitwall/internal/domain/performance"
)

type PerformanceService struct {
	performanceRepo performance.Repository
}

func NewPerformanceService(performanceRepo performance.Repository) *PerformanceService {
	return &PerformanceService{performanceRepo: performanceRepo}
}

func (s *PerformanceService) Upsert(ctx context.Context, item performance.Performance) (performance.Performance, error) {
	if item.Driver.ID <= 0 {
		return performance.Performance{}, fmt.Errorf("%w: driver id must be positive", ErrInvalidInput)
	}

	if err := s.performanceRepo.Upsert(ctx, item); err != nil {
		return performance.Performance{}, fmt.Errorf("upsert driver performance: %w", err)
	}

	return item, nil
}

func (s *PerformanceService) GetByDriverID(ctx context.Context, driverID int) (performance.Performance, error) {
	item, exists, err := s.performanceRepo.GetByDriverID(ctx, driverID)
	if err != nil {
		return performance.Performance{}, fmt.Errorf("get driver performance: %w", err)
	}
	if !exists {
		return performance.Performance{}, fmt.Errorf("%w: driver=%d", ErrNotFound, driverID)
	}

	return item, nil
}
