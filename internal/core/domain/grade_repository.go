package domain

import (
	"context"
	"time"
)

// Grade is a single grade a teacher assigned to a student.
type Grade struct {
	ID        int
	StudentID int
	TeacherID int
	Subject   string
	Value     int
	Date      time.Time
	Comment   *string
}

// GradePatch holds a partial update; nil fields are left untouched.
type GradePatch struct {
	Subject *string
	Value   *int
	Date    *time.Time
	Comment *string
}

// GradeRepository is the data-access contract for grades.
type GradeRepository interface {
	// List returns grades, optionally filtered by student.
	List(ctx context.Context, studentID *int) ([]Grade, error)

	// Get returns the grade with the given id, or (nil, nil) when absent.
	Get(ctx context.Context, id int) (*Grade, error)

	// Create inserts a grade and returns the stored row.
	Create(ctx context.Context, g Grade) (*Grade, error)

	// Update applies patch to the grade and returns the updated row, or
	// (nil, nil) when the grade does not exist.
	Update(ctx context.Context, id int, patch GradePatch) (*Grade, error)

	// Delete removes the grade. Deleting a missing grade is not an error.
	Delete(ctx context.Context, id int) error
}
