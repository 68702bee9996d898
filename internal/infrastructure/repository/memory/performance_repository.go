package memory

import (
	"context"
	"sync"

	"github.com/pitwallhq/pitwall/internal/domain/performance"
)

type PerformanceRepository struct {
	mu    sync.RWMutex
	items map[int]performance.Performance
}

func NewPerformanceRepository() *PerformanceRepository {
	return &PerformanceRepository{items: make(map[int]performance.Performance)}
}

func (r *PerformanceRepository) Upsert(_ context.Context, item performance.Performance) error {
	r.mu.Lock()
	r.items[item.Driver.ID] = clonePerformance(item)
	r.mu.Unlock()

	return nil
}

func (r *PerformanceRepository) GetByDriverID(_ context.Context, driverID int) (performance.Performance, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[driverID]
	if !ok {
		return performance.Performance{}, false, nil
	}

	return clonePerformance(item), true, nil
}

func clonePerformance(p performance.Performance) performance.Performance {
	copied := p
	copied.LapTimes = append([]performance.LapTime(nil), p.LapTimes...)
	return copied
}
