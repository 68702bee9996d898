package user

// User is one credential record. The table is seeded at startup and
// not mutable through any exposed operation.
type User struct {
	ID           int
	Username     string
	FullName     string
	Email        string
	Disabled     bool
	PasswordHash string
}

// Principal is the authenticated identity carried through the request
// context after token verification.
type Principal struct {
	Username string
	FullName string
	Email    string
}
