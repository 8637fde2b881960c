package service

import (
	"context"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

// UserService is the administrator's view of user accounts.
type UserService struct {
	auth  *AuthService
	users ports.UserRepository
}

func NewUserService(auth *AuthService, users ports.UserRepository) *UserService {
	return &UserService{auth: auth, users: users}
}

func (s *UserService) Create(ctx context.Context, caller domain.Identity, input ports.CreateUserInput) (*domain.User, error) {
	if err := requireRole(caller, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.auth.createUser(ctx, input.Email, input.Password, input.Name, input.Phone, input.Role)
}

func (s *UserService) List(ctx context.Context, caller domain.Identity, filter ports.UserFilter) ([]*domain.User, error) {
	if err := requireRole(caller, domain.RoleAdmin, domain.RolePropertyManager); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.users.List(ctx, filter)
}
