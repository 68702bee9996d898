package usecase

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/pitwallhq/pitwall/internal/domain/schedule"
)

type ScheduleService struct {
	scheduleRepo schedule.Repository
}

func NewScheduleService(scheduleRepo schedule.Repository) *ScheduleService {
	return &ScheduleService{scheduleRepo: scheduleRepo}
}

// Create validates the time range and hands the record to the store,
// which assigns the ID when the caller left it zero and rejects a
// taken one. Both checks must pass for the write to land.
func (s *ScheduleService) Create(ctx context.Context, item schedule.Schedule) (schedule.Schedule, error) {
	if item.ID < 0 {
		return schedule.Schedule{}, fmt.Errorf("%w: schedule id cannot be negative", ErrInvalidInput)
	}
	if item.EngineerID <= 0 {
		return schedule.Schedule{}, fmt.Errorf("%w: engineer id must be positive", ErrInvalidInput)
	}
	if err := schedule.ValidateTimeRange(item.StartTime, item.EndTime); err != nil {
		return schedule.Schedule{}, err
	}

	created, err := s.scheduleRepo.Create(ctx, item)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("create schedule: %w", err)
	}

	return created, nil
}

func (s *ScheduleService) List(ctx context.Context) ([]schedule.Schedule, error) {
	items, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	return items, nil
}

func (s *ScheduleService) ListByEngineer(ctx context.Context, engineerID int) ([]schedule.Schedule, error) {
	items, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	return lo.Filter(items, func(item schedule.Schedule, _ int) bool {
		return item.EngineerID == engineerID
	}), nil
}

// Update replaces the record at the path ID. The ID in the body is
// ignored; the target must already exist.
func (s *ScheduleService) Update(ctx context.Context, scheduleID int, item schedule.Schedule) (schedule.Schedule, error) {
	if scheduleID <= 0 {
		return schedule.Schedule{}, fmt.Errorf("%w: schedule id must be positive", ErrInvalidInput)
	}
	if item.EngineerID <= 0 {
		return schedule.Schedule{}, fmt.Errorf("%w: engineer id must be positive", ErrInvalidInput)
	}
	if err := schedule.ValidateTimeRange(item.StartTime, item.EndTime); err != nil {
		return schedule.Schedule{}, err
	}

	item.ID = scheduleID
	updated, exists, err := s.scheduleRepo.Update(ctx, item)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("update schedule: %w", err)
	}
	if !exists {
		return schedule.Schedule{}, fmt.Errorf("%w: schedule=%d", ErrNotFound, scheduleID)
	}

	return updated, nil
}
