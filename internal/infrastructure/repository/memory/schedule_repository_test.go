package memory

import (
	"errors"
	"testing"

	"github.com/pitwallhq/pitwall/internal/domain/schedule"
)

func TestScheduleRepository_Create_AssignsMonotonicIDs(t *testing.T) {
	repo := NewScheduleRepository()

	first, err := repo.Create(t.Context(), schedule.Schedule{EngineerID: 10})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := repo.Create(t.Context(), schedule.Schedule{EngineerID: 11})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestScheduleRepository_Create_DuplicateID(t *testing.T) {
	repo := NewScheduleRepository()

	if _, err := repo.Create(t.Context(), schedule.Schedule{ID: 5, EngineerID: 10}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.Create(t.Context(), schedule.Schedule{ID: 5, EngineerID: 11}); !errors.Is(err, schedule.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestScheduleRepository_Create_CounterAdvancesOnExplicitID(t *testing.T) {
	repo := NewScheduleRepository()

	if _, err := repo.Create(t.Context(), schedule.Schedule{ID: 1, EngineerID: 10}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// The counter advanced to 2 on the explicit insert, so the next
	// auto-assigned ID does not collide with it.
	next, err := repo.Create(t.Context(), schedule.Schedule{EngineerID: 11})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if next.ID != 2 {
		t.Fatalf("expected next id 2, got %d", next.ID)
	}
}

func TestScheduleRepository_Create_CounterFrozenOnFailure(t *testing.T) {
	repo := NewScheduleRepository()

	if _, err := repo.Create(t.Context(), schedule.Schedule{ID: 1, EngineerID: 10}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.Create(t.Context(), schedule.Schedule{ID: 1, EngineerID: 11}); err == nil {
		t.Fatalf("expected duplicate create to fail")
	}

	next, err := repo.Create(t.Context(), schedule.Schedule{EngineerID: 12})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if next.ID != 2 {
		t.Fatalf("expected rejected create to leave counter at 2, got %d", next.ID)
	}
}

func TestScheduleRepository_Update(t *testing.T) {
	repo := NewScheduleRepository()

	created, err := repo.Create(t.Context(), schedule.Schedule{EngineerID: 10, TaskDescription: "setup"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	created.TaskDescription = "teardown"
	updated, exists, err := repo.Update(t.Context(), created)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !exists {
		t.Fatalf("expected schedule to exist")
	}
	if updated.TaskDescription != "teardown" {
		t.Fatalf("unexpected task: %q", updated.TaskDescription)
	}

	_, exists, err = repo.Update(t.Context(), schedule.Schedule{ID: 99, EngineerID: 10})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if exists {
		t.Fatalf("did not expect schedule 99 to exist")
	}
}

func TestScheduleRepository_List_SortedByID(t *testing.T) {
	repo := NewScheduleRepository()

	for _, id := range []int{30, 10, 20} {
		if _, err := repo.Create(t.Context(), schedule.Schedule{ID: id, EngineerID: 1}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	items, err := repo.List(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 schedules, got %d", len(items))
	}
	for i, want := range []int{10, 20, 30} {
		if items[i].ID != want {
			t.Fatalf("expected id %d at index %d, got %d", want, i, items[i].ID)
		}
	}
}
