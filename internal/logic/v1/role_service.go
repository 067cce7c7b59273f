package v1

import (
	"context"
	"fmt"

	"github.com/edziennik/school-backend/internal/core/domain"
)

// RoleService lists and creates roles.
type RoleService struct {
	roles domain.RoleRepository
}

// NewRoleService creates a new RoleService.
func NewRoleService(roles domain.RoleRepository) *RoleService {
	return &RoleService{roles: roles}
}

// List returns all roles.
func (s *RoleService) List(ctx context.Context) ([]domain.RoleRow, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %v: %w", err, ErrInternal)
	}
	return roles, nil
}

// Create inserts a role.
func (s *RoleService) Create(ctx context.Context, name string) (*domain.RoleRow, error) {
	role, err := s.roles.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create role: %v: %w", err, ErrInternal)
	}
	return role, nil
}
