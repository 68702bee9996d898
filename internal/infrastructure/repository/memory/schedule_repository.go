package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/pitwallhq/pitwall/internal/domain/schedule"
)

type ScheduleRepository struct {
	mu     sync.RWMutex
	items  map[int]schedule.Schedule
	nextID int
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{
		items:  make(map[int]schedule.Schedule),
		nextID: 1,
	}
}

// Create assigns the next monotonic ID when the caller left it zero.
// The existence check, the allocation and the insert happen under one
// lock so concurrent creations cannot collide. The counter advances
// only on success and IDs are never reused.
func (r *ScheduleRepository) Create(_ context.Context, item schedule.Schedule) (schedule.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == 0 {
		item.ID = r.nextID
	}
	if _, exists := r.items[item.ID]; exists {
		return schedule.Schedule{}, fmt.Errorf("%w: id=%d", schedule.ErrDuplicateID, item.ID)
	}

	r.items[item.ID] = item
	r.nextID++

	return item, nil
}

func (r *ScheduleRepository) Update(_ context.Context, item schedule.Schedule) (schedule.Schedule, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return schedule.Schedule{}, false, nil
	}

	r.items[item.ID] = item

	return item, true, nil
}

func (r *ScheduleRepository) List(_ context.Context) ([]schedule.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedule.Schedule, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
