package memory

import (
	"context"
	"sync"

	"github.com/pitwallhq/pitwall/internal/domain/driver"
	"github.com/pitwallhq/pitwall/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items map[int]team.Team
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{items: make(map[int]team.Team)}
}

// Upsert replaces the whole record for the team's ID. Concurrent
// writers to the same ID race and the last write wins.
func (r *TeamRepository) Upsert(_ context.Context, item team.Team) error {
	r.mu.Lock()
	r.items[item.ID] = cloneTeam(item)
	r.mu.Unlock()

	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return cloneTeam(item), true, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, cloneTeam(item))
	}

	return out, nil
}

func cloneTeam(t team.Team) team.Team {
	copied := t
	copied.Members = append([]string(nil), t.Members...)
	copied.Inventory = append([]team.InventoryItem(nil), t.Inventory...)
	copied.Sponsors = append([]team.Sponsor(nil), t.Sponsors...)
	copied.Engineers = append([]team.Engineer(nil), t.Engineers...)
	copied.Drivers = append([]driver.Driver(nil), t.Drivers...)
	return copied
}
