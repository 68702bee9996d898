package usecase

import (
	"errors"
	"testing"

	"github.com/pitwallhq/pitwall/internal/domain/schedule"
	"github.com/pitwallhq/pitwall/internal/infrastructure/repository/memory"
)

func TestScheduleService_Create_AssignsID(t *testing.T) {
	svc := NewScheduleService(memory.NewScheduleRepository())

	created, err := svc.Create(t.Context(), schedule.Schedule{
		EngineerID:      10,
		TaskDescription: "aero setup",
		Date:            "2026-09-04",
		StartTime:       "09:00",
		EndTime:         "11:30",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}
}

func TestScheduleService_Create_InvalidTimeRange(t *testing.T) {
	svc := NewScheduleService(memory.NewScheduleRepository())

	_, err := svc.Create(t.Context(), schedule.Schedule{
		EngineerID:      10,
		TaskDescription: "aero setup",
		Date:            "2026-09-04",
		StartTime:       "12:00",
		EndTime:         "12:00",
	})
	if !errors.Is(err, schedule.ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
}

func TestScheduleService_Create_DuplicateID(t *testing.T) {
	svc := NewScheduleService(memory.NewScheduleRepository())

	item := schedule.Schedule{
		ID:              3,
		EngineerID:      10,
		TaskDescription: "aero setup",
		Date:            "2026-09-04",
		StartTime:       "09:00",
		EndTime:         "11:30",
	}
	if _, err := svc.Create(t.Context(), item); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(t.Context(), item); !errors.Is(err, schedule.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestScheduleService_ListByEngineer(t *testing.T) {
	svc := NewScheduleService(memory.NewScheduleRepository())

	for _, engineerID := range []int{10, 20, 10} {
		if _, err := svc.Create(t.Context(), schedule.Schedule{
			EngineerID:      engineerID,
			TaskDescription: "task",
			Date:            "2026-09-04",
			StartTime:       "09:00",
			EndTime:         "10:00",
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	items, err := svc.ListByEngineer(t.Context(), 10)
	if err != nil {
		t.Fatalf("list by engineer failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 schedules for engineer 10, got %d", len(items))
	}
	for _, item := range items {
		if item.EngineerID != 10 {
			t.Fatalf("unexpected engineer id %d in filtered list", item.EngineerID)
		}
	}
}

func TestScheduleService_Update_PathIDWins(t *testing.T) {
	svc := NewScheduleService(memory.NewScheduleRepository())

	created, err := svc.Create(t.Context(), schedule.Schedule{
		EngineerID:      10,
		TaskDescription: "aero setup",
		Date:            "2026-09-04",
		StartTime:       "09:00",
		EndTime:         "11:30",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(t.Context(), created.ID, schedule.Schedule{
		ID:              999,
		EngineerID:      10,
		TaskDescription: "gearbox check",
		Date:            "2026-09-05",
		StartTime:       "13:00",
		EndTime:         "15:00",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected path id %d to win, got %d", created.ID, updated.ID)
	}
	if updated.TaskDescription != "gearbox check" {
		t.Fatalf("unexpected task: %q", updated.TaskDescription)
	}
}

func TestScheduleService_Update_Missing(t *testing.T) {
	svc := NewScheduleService(memory.NewScheduleRepository())

	_, err := svc.Update(t.Context(), 99, schedule.Schedule{
		EngineerID:      10,
		TaskDescription: "aero setup",
		Date:            "2026-09-04",
		StartTime:       "09:00",
		EndTime:         "11:30",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
