// Package domain defines the data-access contracts the logic layer depends
// on. Implementations live in internal/core/repository; the logic layer never
// touches SQL or pgx directly.
package domain

import "context"

// UserRow is a user record as stored, including the password hash so the
// logic layer can verify credentials. Roles carries the attached role names;
// order is irrelevant.
type UserRow struct {
	ID           int
	Email        string
	FirstName    string
	LastName     string
	PasswordHash []byte
	TwoFAEnabled bool
	Roles        []string
}

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// GetByEmail returns the user with the given email, roles included.
	// Returns (nil, nil) when no user matches.
	GetByEmail(ctx context.Context, email string) (*UserRow, error)

	// GetByID returns the user with the given id, roles included.
	// Returns (nil, nil) when no user matches.
	GetByID(ctx context.Context, id int) (*UserRow, error)

	// List returns all users with their role names.
	List(ctx context.Context) ([]UserRow, error)

	// Create inserts a new user and attaches the named role when it exists;
	// an unknown role name is skipped. Returns the stored row. Email
	// uniqueness is enforced by the database; a concurrent duplicate
	// surfaces as a unique-violation error.
	Create(ctx context.Context, email, firstName, lastName string, passwordHash []byte, roleName string) (*UserRow, error)
}
