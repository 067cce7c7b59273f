package v1

import (
	"context"
	"fmt"

	"github.com/edziennik/school-backend/internal/core/domain"
)

// UserService exposes read access to accounts.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns public summaries of all accounts.
func (s *UserService) List(ctx context.Context) ([]domain.UserSummary, error) {
	rows, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %v: %w", err, ErrInternal)
	}
	summaries := make([]domain.UserSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, summarize(&rows[i]))
	}
	return summaries, nil
}

// Get returns the public summary of one account.
func (s *UserService) Get(ctx context.Context, id int) (*domain.UserSummary, error) {
	row, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %v: %w", id, err, ErrInternal)
	}
	if row == nil {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	summary := summarize(row)
	return &summary, nil
}
