package domain

import "context"

// RoleRow is a role record.
type RoleRow struct {
	ID   int
	Name string
}

// RoleRepository is the data-access contract for roles.
type RoleRepository interface {
	// List returns all roles.
	List(ctx context.Context) ([]RoleRow, error)

	// Create inserts a role and returns the stored row.
	Create(ctx context.Context, name string) (*RoleRow, error)
}
