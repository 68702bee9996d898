package usecase

import (
	"context"
	"fmt"

	"github.com/pitwallhq/pitwall/internal/domain/strategy"
)

type StrategyService struct {
	strategyRepo strategy.Repository
}

func NewStrategyService(strategyRepo strategy.Repository) *StrategyService {
	return &StrategyService{strategyRepo: strategyRepo}
}

func (s *StrategyService) Upsert(ctx context.Context, item strategy.Strategy) (strategy.Strategy, error) {
	if item.Race.ID <= 0 {
		return strategy.Strategy{}, fmt.Errorf("%w: race id must be positive", ErrInvalidInput)
	}

	if err := s.strategyRepo.Upsert(ctx, item); err != nil {
		return strategy.Strategy{}, fmt.Errorf("upsert race strategy: %w", err)
	}

	return item, nil
}

func (s *StrategyService) GetByRaceID(ctx context.Context, raceID int) (strategy.Strategy, error) {
	item, exists, err := s.strategyRepo.GetByRaceID(ctx, raceID)
	if err != nil {
		return strategy.Strategy{}, fmt.Errorf("get race strategy: %w", err)
	}
	if !exists {
		return strategy.Strategy{}, fmt.Errorf("%w: race=%d", ErrNotFound, raceID)
	}

	return item, nil
}

// ReplacePlan swaps only the strategy plan, leaving the race and its
// telemetry untouched. Same-race writers race with last-write-wins
// semantics, which this domain accepts.
func (s *StrategyService) ReplacePlan(ctx context.Context, raceID int, plan strategy.Plan) (strategy.Strategy, error) {
	item, exists, err := s.strategyRepo.GetByRaceID(ctx, raceID)
	if err != nil {
		return strategy.Strategy{}, fmt.Errorf("get race strategy: %w", err)
	}
	if !exists {
		return strategy.Strategy{}, fmt.Errorf("%w: race=%d", ErrNotFound, raceID)
	}

	item.Plan = plan
	if err := s.strategyRepo.Upsert(ctx, item); err != nil {
		return strategy.Strategy{}, fmt.Errorf("replace strategy plan: %w", err)
	}

	return item, nil
}
