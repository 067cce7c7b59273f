package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/edziennik/school-backend/internal/core/domain"
)

// PgxMessageRepository implements domain.MessageRepository using pgx.
type PgxMessageRepository struct {
	db DB
}

// NewMessageRepository creates a new PgxMessageRepository.
func NewMessageRepository(db DB) *PgxMessageRepository {
	return &PgxMessageRepository{db: db}
}

const messageColumns = `id, from_id, to_id, class_name, content, created_at`

// Create inserts a message and returns the stored row including the
// database-assigned creation timestamp.
func (r *PgxMessageRepository) Create(ctx context.Context, m domain.Message) (*domain.Message, error) {
	var stored domain.Message
	err := r.db.QueryRow(ctx,
		`INSERT INTO messages (from_id, to_id, class_name, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+messageColumns,
		m.FromID, m.ToID, m.ClassName, m.Content,
	).Scan(&stored.ID, &stored.FromID, &stored.ToID, &stored.ClassName, &stored.Content, &stored.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// List returns messages matching the filter, oldest first.
func (r *PgxMessageRepository) List(ctx context.Context, filter domain.MessageFilter) ([]domain.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages`
	var conds []string
	var args []any
	if filter.FromID != nil {
		args = append(args, *filter.FromID)
		conds = append(conds, fmt.Sprintf("from_id = $%d", len(args)))
	}
	if filter.ToID != nil {
		args = append(args, *filter.ToID)
		conds = append(conds, fmt.Sprintf("to_id = $%d", len(args)))
	}
	if filter.ClassName != nil {
		args = append(args, *filter.ClassName)
		conds = append(conds, fmt.Sprintf("class_name = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.FromID, &m.ToID, &m.ClassName, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
