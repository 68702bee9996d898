package performance

import "context"

// Repository exposes driver performance persistence operations.
type Repository interface {
	Upsert(ctx context.Context, item Performance) error
	GetByDriverID(ctx context.Context, driverID int) (Performance, bool, error)
}
