package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/edziennik/school-backend/internal/core/domain"
)

// PgxScheduleRepository implements domain.ScheduleRepository using pgx.
type PgxScheduleRepository struct {
	db DB
}

// NewScheduleRepository creates a new PgxScheduleRepository.
func NewScheduleRepository(db DB) *PgxScheduleRepository {
	return &PgxScheduleRepository{db: db}
}

const scheduleColumns = `id, class_name, weekday, time_from, time_to, subject, teacher_id`

func scanScheduleItem(row pgx.Row) (*domain.ScheduleItem, error) {
	var item domain.ScheduleItem
	err := row.Scan(&item.ID, &item.ClassName, &item.Weekday, &item.TimeFrom, &item.TimeTo, &item.Subject, &item.TeacherID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// List returns schedule items, optionally filtered by class and weekday.
func (r *PgxScheduleRepository) List(ctx context.Context, className *string, weekday *int) ([]domain.ScheduleItem, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedule`
	var conds []string
	var args []any
	if className != nil {
		args = append(args, *className)
		conds = append(conds, fmt.Sprintf("class_name = $%d", len(args)))
	}
	if weekday != nil {
		args = append(args, *weekday)
		conds = append(conds, fmt.Sprintf("weekday = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ScheduleItem
	for rows.Next() {
		var item domain.ScheduleItem
		if err := rows.Scan(&item.ID, &item.ClassName, &item.Weekday, &item.TimeFrom, &item.TimeTo, &item.Subject, &item.TeacherID); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Get returns the item with the given id, or (nil, nil) when absent.
func (r *PgxScheduleRepository) Get(ctx context.Context, id int) (*domain.ScheduleItem, error) {
	return scanScheduleItem(r.db.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM schedule WHERE id = $1`, id))
}

// Create inserts an item and returns the stored row.
func (r *PgxScheduleRepository) Create(ctx context.Context, item domain.ScheduleItem) (*domain.ScheduleItem, error) {
	return scanScheduleItem(r.db.QueryRow(ctx,
		`INSERT INTO schedule (class_name, weekday, time_from, time_to, subject, teacher_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+scheduleColumns,
		item.ClassName, item.Weekday, item.TimeFrom, item.TimeTo, item.Subject, item.TeacherID))
}

// Update applies patch and returns the updated row, or (nil, nil) when the
// item does not exist.
func (r *PgxScheduleRepository) Update(ctx context.Context, id int, patch domain.SchedulePatch) (*domain.ScheduleItem, error) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.ClassName != nil {
		set("class_name", *patch.ClassName)
	}
	if patch.Weekday != nil {
		set("weekday", *patch.Weekday)
	}
	if patch.TimeFrom != nil {
		set("time_from", *patch.TimeFrom)
	}
	if patch.TimeTo != nil {
		set("time_to", *patch.TimeTo)
	}
	if patch.Subject != nil {
		set("subject", *patch.Subject)
	}
	if patch.TeacherID != nil {
		set("teacher_id", *patch.TeacherID)
	}
	if len(sets) == 0 {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE schedule SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), scheduleColumns)
	return scanScheduleItem(r.db.QueryRow(ctx, query, args...))
}

// Delete removes the item. Deleting a missing item is not an error.
func (r *PgxScheduleRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM schedule WHERE id = $1`, id)
	return err
}
