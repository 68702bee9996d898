package memory

import (
	"context"
	"sync"

	"github.com/pitwallhq/pitwall/internal/domain/user"
)

type UserRepository struct {
	mu         sync.RWMutex
	byID       map[int]user.User
	byUsername map[string]int
}

// NewUserRepository builds the credential table. The table is keyed by
// the internal user ID; username lookups go through a secondary index
// built once here, since the logical username is not the table key.
func NewUserRepository(users []user.User) *UserRepository {
	byID := make(map[int]user.User, len(users))
	byUsername := make(map[string]int, len(users))

	for _, item := range users {
		byID[item.ID] = item
		byUsername[item.Username] = item.ID
	}

	return &UserRepository{
		byID:       byID,
		byUsername: byUsername,
	}
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return user.User{}, false, nil
	}

	return r.byID[id], true, nil
}
