package v1

import (
	"context"
	"fmt"

	"github.com/edziennik/school-backend/internal/core/domain"
)

// GradeService is plain per-record CRUD over grades; no business rules live
// here.
type GradeService struct {
	grades domain.GradeRepository
}

// NewGradeService creates a new GradeService.
func NewGradeService(grades domain.GradeRepository) *GradeService {
	return &GradeService{grades: grades}
}

// List returns grades, optionally filtered by student.
func (s *GradeService) List(ctx context.Context, studentID *int) ([]domain.Grade, error) {
	grades, err := s.grades.List(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list grades: %v: %w", err, ErrInternal)
	}
	return grades, nil
}

// Get returns one grade or ErrNotFound.
func (s *GradeService) Get(ctx context.Context, id int) (*domain.Grade, error) {
	g, err := s.grades.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get grade %d: %v: %w", id, err, ErrInternal)
	}
	if g == nil {
		return nil, fmt.Errorf("grade %d: %w", id, ErrNotFound)
	}
	return g, nil
}

// Create inserts a grade.
func (s *GradeService) Create(ctx context.Context, g domain.Grade) (*domain.Grade, error) {
	created, err := s.grades.Create(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("create grade: %v: %w", err, ErrInternal)
	}
	return created, nil
}

// Update patches a grade or returns ErrNotFound.
func (s *GradeService) Update(ctx context.Context, id int, patch domain.GradePatch) (*domain.Grade, error) {
	g, err := s.grades.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update grade %d: %v: %w", id, err, ErrInternal)
	}
	if g == nil {
		return nil, fmt.Errorf("grade %d: %w", id, ErrNotFound)
	}
	return g, nil
}

// Delete removes a grade; deleting a missing grade succeeds.
func (s *GradeService) Delete(ctx context.Context, id int) error {
	if err := s.grades.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete grade %d: %v: %w", id, err, ErrInternal)
	}
	return nil
}
