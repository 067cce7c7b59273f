package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/edziennik/school-backend/internal/core/domain"
)

// PgxGradeRepository implements domain.GradeRepository using pgx.
type PgxGradeRepository struct {
	db DB
}

// NewGradeRepository creates a new PgxGradeRepository.
func NewGradeRepository(db DB) *PgxGradeRepository {
	return &PgxGradeRepository{db: db}
}

const gradeColumns = `id, student_id, teacher_id, subject, value, date, comment`

func scanGrade(row pgx.Row) (*domain.Grade, error) {
	var g domain.Grade
	err := row.Scan(&g.ID, &g.StudentID, &g.TeacherID, &g.Subject, &g.Value, &g.Date, &g.Comment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

// List returns grades, optionally filtered by student.
func (r *PgxGradeRepository) List(ctx context.Context, studentID *int) ([]domain.Grade, error) {
	query := `SELECT ` + gradeColumns + ` FROM grades`
	var args []any
	if studentID != nil {
		query += ` WHERE student_id = $1`
		args = append(args, *studentID)
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []domain.Grade
	for rows.Next() {
		var g domain.Grade
		if err := rows.Scan(&g.ID, &g.StudentID, &g.TeacherID, &g.Subject, &g.Value, &g.Date, &g.Comment); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// Get returns the grade with the given id, or (nil, nil) when absent.
func (r *PgxGradeRepository) Get(ctx context.Context, id int) (*domain.Grade, error) {
	return scanGrade(r.db.QueryRow(ctx,
		`SELECT `+gradeColumns+` FROM grades WHERE id = $1`, id))
}

// Create inserts a grade and returns the stored row.
func (r *PgxGradeRepository) Create(ctx context.Context, g domain.Grade) (*domain.Grade, error) {
	return scanGrade(r.db.QueryRow(ctx,
		`INSERT INTO grades (student_id, teacher_id, subject, value, date, comment)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+gradeColumns,
		g.StudentID, g.TeacherID, g.Subject, g.Value, g.Date, g.Comment))
}

// Update applies patch to the grade and returns the updated row, or
// (nil, nil) when the grade does not exist.
func (r *PgxGradeRepository) Update(ctx context.Context, id int, patch domain.GradePatch) (*domain.Grade, error) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Subject != nil {
		set("subject", *patch.Subject)
	}
	if patch.Value != nil {
		set("value", *patch.Value)
	}
	if patch.Date != nil {
		set("date", *patch.Date)
	}
	if patch.Comment != nil {
		set("comment", *patch.Comment)
	}
	if len(sets) == 0 {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE grades SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), gradeColumns)
	return scanGrade(r.db.QueryRow(ctx, query, args...))
}

// Delete removes the grade. Deleting a missing grade is not an error.
func (r *PgxGradeRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	return err
}
