package user

import "context"

// Repository resolves users by their logical username, which is
// distinct from the table's own key.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (User, bool, error)
}
