package v1

import (
	"context"
	"fmt"

	"github.com/edziennik/school-backend/internal/core/domain"
)

// ScheduleService is plain per-record CRUD over timetable entries.
type ScheduleService struct {
	schedule domain.ScheduleRepository
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(schedule domain.ScheduleRepository) *ScheduleService {
	return &ScheduleService{schedule: schedule}
}

// List returns timetable entries, optionally filtered by class and weekday.
func (s *ScheduleService) List(ctx context.Context, className *string, weekday *int) ([]domain.ScheduleItem, error) {
	items, err := s.schedule.List(ctx, className, weekday)
	if err != nil {
		return nil, fmt.Errorf("list schedule: %v: %w", err, ErrInternal)
	}
	return items, nil
}

// Get returns one entry or ErrNotFound.
func (s *ScheduleService) Get(ctx context.Context, id int) (*domain.ScheduleItem, error) {
	item, err := s.schedule.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get schedule item %d: %v: %w", id, err, ErrInternal)
	}
	if item == nil {
		return nil, fmt.Errorf("schedule item %d: %w", id, ErrNotFound)
	}
	return item, nil
}

// Create inserts an entry.
func (s *ScheduleService) Create(ctx context.Context, item domain.ScheduleItem) (*domain.ScheduleItem, error) {
	created, err := s.schedule.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create schedule item: %v: %w", err, ErrInternal)
	}
	return created, nil
}

// Update patches an entry or returns ErrNotFound.
func (s *ScheduleService) Update(ctx context.Context, id int, patch domain.SchedulePatch) (*domain.ScheduleItem, error) {
	item, err := s.schedule.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update schedule item %d: %v: %w", id, err, ErrInternal)
	}
	if item == nil {
		return nil, fmt.Errorf("schedule item %d: %w", id, ErrNotFound)
	}
	return item, nil
}

// Delete removes an entry; deleting a missing entry succeeds.
func (s *ScheduleService) Delete(ctx context.Context, id int) error {
	if err := s.schedule.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete schedule item %d: %v: %w", id, err, ErrInternal)
	}
	return nil
}
