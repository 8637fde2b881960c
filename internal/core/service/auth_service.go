package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

const minPasswordLength = 8

// AuthService implements registration, login, token verification and logout.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	tokens   tokenIssuer
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokenIssuer{secret: []byte(jwtSecret), ttl: tokenTTL, now: time.Now},
		logger:   logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.createUser(ctx, input.Email, input.Password, input.Name, input.Phone, domain.RoleTenant)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.issue(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")
	return &ports.LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	identity, err := s.tokens.parse(token)
	if err != nil {
		return domain.Identity{}, err
	}
	if identity.TokenID == "" {
		return identity, nil
	}

	revoked, err := s.sessions.IsRevoked(ctx, identity.TokenID)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("check token revocation: %w", err)
	}
	if revoked {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return identity, nil
}

// Logout revokes the caller's token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, caller domain.Identity) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}
	if caller.TokenID == "" {
		return nil
	}

	ttl := caller.ExpiresAt.Sub(s.tokens.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.sessions.Revoke(ctx, caller.TokenID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	s.logger.Info().Str("user_id", caller.UserID).Msg("user logged out")
	return nil
}

func (s *AuthService) Me(ctx context.Context, caller domain.Identity) (*domain.User, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, caller.UserID)
}

func (s *AuthService) createUser(ctx context.Context, email, password, name, phone string, role domain.Role) (*domain.User, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	switch {
	case email == "":
		return nil, validationError("email is required")
	case name == "":
		return nil, validationError("name is required")
	case len(password) < minPasswordLength:
		return nil, validationError("password must be at least %d characters", minPasswordLength)
	case !role.Valid():
		return nil, validationError("invalid role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Phone:        strings.TrimSpace(phone),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(role)).Msg("user created")
	return created, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
