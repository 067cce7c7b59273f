package repository

import (
	"context"

	"github.com/edziennik/school-backend/internal/core/domain"
)

// PgxRoleRepository implements domain.RoleRepository using pgx.
type PgxRoleRepository struct {
	db DB
}

// NewRoleRepository creates a new PgxRoleRepository.
func NewRoleRepository(db DB) *PgxRoleRepository {
	return &PgxRoleRepository{db: db}
}

// List returns all roles.
func (r *PgxRoleRepository) List(ctx context.Context) ([]domain.RoleRow, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.RoleRow
	for rows.Next() {
		var role domain.RoleRow
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// Create inserts a role and returns the stored row.
func (r *PgxRoleRepository) Create(ctx context.Context, name string) (*domain.RoleRow, error) {
	var role domain.RoleRow
	err := r.db.QueryRow(ctx,
		`INSERT INTO roles (name) VALUES ($1) RETURNING id, name`, name,
	).Scan(&role.ID, &role.Name)
	if err != nil {
		return nil, err
	}
	return &role, nil
}
