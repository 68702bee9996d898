package memory

import (
	"context"
	"sync"

	"github.com/pitwallhq/pitwall/internal/domain/strategy"
)

type StrategyRepository struct {
	mu    sync.RWMutex
	items map[int]strategy.Strategy
}

func NewStrategyRepository() *StrategyRepository {
	return &StrategyRepository{items: make(map[int]strategy.Strategy)}
}

func (r *StrategyRepository) Upsert(_ context.Context, item strategy.Strategy) error {
	r.mu.Lock()
	r.items[item.Race.ID] = cloneStrategy(item)
	r.mu.Unlock()

	return nil
}

func (r *StrategyRepository) GetByRaceID(_ context.Context, raceID int) (strategy.Strategy, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[raceID]
	if !ok {
		return strategy.Strategy{}, false, nil
	}

	return cloneStrategy(item), true, nil
}

func cloneStrategy(s strategy.Strategy) strategy.Strategy {
	copied := s
	copied.Race.Result = append([]string(nil), s.Race.Result...)
	copied.Plan.PitStopSchedule = append([]int(nil), s.Plan.PitStopSchedule...)
	copied.Plan.TyreStrategy = append([]string(nil), s.Plan.TyreStrategy...)
	return copied
}
