package ports

import (
	"context"
	"time"

	"github.com/rentsoft/property-api/internal/core/domain"
)

// RegisterInput carries self-service sign-up data. Registered users are tenants.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// AuthService issues, verifies and revokes bearer tokens.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Authenticate resolves a bearer token to the caller's identity.
	// Invalid, expired and revoked tokens yield domain.ErrUnauthenticated.
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
	Logout(ctx context.Context, caller domain.Identity) error
	Me(ctx context.Context, caller domain.Identity) (*domain.User, error)
}
