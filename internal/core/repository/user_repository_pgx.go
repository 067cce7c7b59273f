package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edziennik/school-backend/internal/core/domain"
)

// user selection with aggregated role names; users without roles get an
// empty array, not NULL.
const userSelect = `
	SELECT u.id, u.email, u.first_name, u.last_name, u.password_hash, u.two_fa_enabled,
	       COALESCE(array_agg(r.name ORDER BY r.name) FILTER (WHERE r.name IS NOT NULL), '{}')
	FROM users u
	LEFT JOIN user_roles ur ON ur.user_id = u.id
	LEFT JOIN roles r ON r.id = ur.role_id
`

// PgxUserRepository implements domain.UserRepository using pgx.
type PgxUserRepository struct {
	db DB
}

// NewUserRepository creates a new PgxUserRepository.
func NewUserRepository(db DB) *PgxUserRepository {
	return &PgxUserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.UserRow, error) {
	var u domain.UserRow
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.TwoFAEnabled, &u.Roles)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail returns the user with the given email, roles included.
// Returns (nil, nil) when no user matches.
func (r *PgxUserRepository) GetByEmail(ctx context.Context, email string) (*domain.UserRow, error) {
	query := userSelect + ` WHERE u.email = $1 GROUP BY u.id`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// GetByID returns the user with the given id, roles included.
// Returns (nil, nil) when no user matches.
func (r *PgxUserRepository) GetByID(ctx context.Context, id int) (*domain.UserRow, error) {
	query := userSelect + ` WHERE u.id = $1 GROUP BY u.id`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// List returns all users with their role names.
func (r *PgxUserRepository) List(ctx context.Context) ([]domain.UserRow, error) {
	query := userSelect + ` GROUP BY u.id ORDER BY u.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.UserRow
	for rows.Next() {
		var u domain.UserRow
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.TwoFAEnabled, &u.Roles); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create inserts a new user and attaches the named role when it exists.
// The insert and the role attachment run in one transaction. A duplicate
// email surfaces as domain.ErrDuplicateEmail.
func (r *PgxUserRepository) Create(ctx context.Context, email, firstName, lastName string, passwordHash []byte, roleName string) (*domain.UserRow, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create user: %w", err)
	}
	defer tx.Rollback(ctx)

	var userID int
	err = tx.QueryRow(ctx,
		`INSERT INTO users (email, first_name, last_name, password_hash) VALUES ($1, $2, $3, $4) RETURNING id`,
		email, firstName, lastName, passwordHash,
	).Scan(&userID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}

	var roles []string
	if roleName != "" {
		var roleID int
		err = tx.QueryRow(ctx, `SELECT id FROM roles WHERE name = $1`, roleName).Scan(&roleID)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			// unknown role: create the user without it
		case err != nil:
			return nil, err
		default:
			if _, err := tx.Exec(ctx,
				`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`, userID, roleID); err != nil {
				return nil, err
			}
			roles = append(roles, roleName)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create user: %w", err)
	}

	return &domain.UserRow{
		ID:           userID,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		Roles:        roles,
	}, nil
}
