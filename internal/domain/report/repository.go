package report

import "context"

// Repository exposes race report persistence operations.
//
// Create assigns the report ID and must reject a duplicate race ID and
// allocate the ID under the same lock as the insert.
type Repository interface {
	Create(ctx context.Context, item Report) (Report, error)
	GetByID(ctx context.Context, reportID int) (Report, bool, error)
}
