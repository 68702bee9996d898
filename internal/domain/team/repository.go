package team

import "context"

// Repository exposes team persistence operations.
type Repository interface {
	Upsert(ctx context.Context, item Team) error
	GetByID(ctx context.Context, teamID int) (Team, bool, error)
	List(ctx context.Context) ([]Team, error)
}
