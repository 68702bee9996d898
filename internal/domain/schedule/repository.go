package schedule

import "context"

// Repository exposes engineer schedule persistence operations.
//
// Create must treat the existence check, the monotonic ID allocation
// and the insert as one atomic unit so concurrent creations cannot
// allocate the same ID.
type Repository interface {
	Create(ctx context.Context, item Schedule) (Schedule, error)
	Update(ctx context.Context, item Schedule) (Schedule, bool, error)
	List(ctx context.Context) ([]Schedule, error)
}
