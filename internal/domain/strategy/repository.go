package strategy

import "context"

// Repository exposes race strategy persistence operations.
type Repository interface {
	Upsert(ctx context.Context, item Strategy) error
	GetByRaceID(ctx context.Context, raceID int) (Strategy, bool, error)
}
