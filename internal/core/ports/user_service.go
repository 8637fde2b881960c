package ports

import (
	"context"

	"github.com/rentsoft/property-api/internal/core/domain"
)

// CreateUserInput carries an administrator-created account.
type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     domain.Role
}

type UserService interface {
	Create(ctx context.Context, caller domain.Identity, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context, caller domain.Identity, filter UserFilter) ([]*domain.User, error)
}
