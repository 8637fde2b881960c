package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

func newTestAuthService() (*AuthService, *stubUserRepo, *stubSessionStore) {
	users := newStubUserRepo()
	sessions := newStubSessionStore()
	return NewAuthService(users, sessions, "secret", time.Hour, zerolog.Nop()), users, sessions
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    " Alice@Example.com ",
		Password: "pass1234",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleTenant {
		t.Fatalf("expected self-registered user to be a tenant, got %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newTestAuthService()

	cases := []ports.RegisterInput{
		{Email: "", Password: "pass1234", Name: "Bob"},
		{Email: "bob@example.com", Password: "short", Name: "Bob"},
		{Email: "bob@example.com", Password: "pass1234", Name: "  "},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", in, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuthService()
	in := ports.RegisterInput{Email: "bob@example.com", Password: "pass1234", Name: "Bob"}

	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _ := newTestAuthService()
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "carol@example.com", Password: "s3cretpass", Name: "Carol"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Role != string(domain.RoleTenant) {
		t.Fatalf("expected role %s, got %v", domain.RoleTenant, claims.Role)
	}
	if claims.Subject != result.User.ID {
		t.Fatalf("expected subject %s, got %s", result.User.ID, claims.Subject)
	}
	if claims.ID == "" {
		t.Fatalf("expected token id to be set")
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	_, _ = svc.Register(context.Background(), ports.RegisterInput{Email: "dave@example.com", Password: "goodpass", Name: "Dave"})

	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass1234"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	svc, _, _ := newTestAuthService()
	_, _ = svc.Register(context.Background(), ports.RegisterInput{Email: "erin@example.com", Password: "pass1234", Name: "Erin"})
	result, err := svc.Login(context.Background(), "erin@example.com", "pass1234")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	identity, err := svc.Authenticate(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if identity.UserID != result.User.ID || identity.Role != domain.RoleTenant {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	if _, err := svc.Authenticate(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for garbage token, got %v", err)
	}
}

func TestAuthService_Authenticate_RejectsOtherSecretAndExpired(t *testing.T) {
	svc, users, _ := newTestAuthService()
	user, _ := users.Create(context.Background(), &domain.User{Email: "f@example.com", Role: domain.RoleAdmin})

	other := tokenIssuer{secret: []byte("other"), ttl: time.Hour, now: time.Now}
	forged, _, err := other.issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), forged); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for foreign secret, got %v", err)
	}

	stale := tokenIssuer{secret: []byte("secret"), ttl: time.Minute, now: func() time.Time { return time.Now().Add(-time.Hour) }}
	expired, _, err := stale.issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), expired); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for expired token, got %v", err)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, _, sessions := newTestAuthService()
	_, _ = svc.Register(context.Background(), ports.RegisterInput{Email: "gus@example.com", Password: "pass1234", Name: "Gus"})
	result, _ := svc.Login(context.Background(), "gus@example.com", "pass1234")

	identity, err := svc.Authenticate(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if err := svc.Logout(context.Background(), identity); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	ttl, ok := sessions.revoked[identity.TokenID]
	if !ok {
		t.Fatalf("expected token %s to be revoked", identity.TokenID)
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Fatalf("unexpected revocation ttl %s", ttl)
	}

	if _, err := svc.Authenticate(context.Background(), result.Token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected revoked token to be rejected, got %v", err)
	}
}

func TestAuthService_Authenticate_StoreFailure(t *testing.T) {
	svc, _, sessions := newTestAuthService()
	_, _ = svc.Register(context.Background(), ports.RegisterInput{Email: "hal@example.com", Password: "pass1234", Name: "Hal"})
	result, _ := svc.Login(context.Background(), "hal@example.com", "pass1234")

	sessions.err = errors.New("connection refused")
	_, err := svc.Authenticate(context.Background(), result.Token)
	if err == nil || errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected store error to surface, got %v", err)
	}
}

func TestUserService_Create_AdminOnly(t *testing.T) {
	auth, users, _ := newTestAuthService()
	svc := NewUserService(auth, users)
	in := ports.CreateUserInput{Email: "pm@example.com", Password: "pass1234", Name: "PM", Role: domain.RolePropertyManager}

	if _, err := svc.Create(context.Background(), managerA, in); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for manager, got %v", err)
	}
	user, err := svc.Create(context.Background(), adminID, in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.Role != domain.RolePropertyManager {
		t.Fatalf("expected role %s, got %s", domain.RolePropertyManager, user.Role)
	}

	in.Email, in.Role = "x@example.com", "OWNER"
	if _, err := svc.Create(context.Background(), adminID, in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown role, got %v", err)
	}
}

func TestUserService_List(t *testing.T) {
	auth, users, _ := newTestAuthService()
	svc := NewUserService(auth, users)
	_, _ = users.Create(context.Background(), &domain.User{Email: "b@example.com", Name: "Bea", Role: domain.RoleTenant})
	_, _ = users.Create(context.Background(), &domain.User{Email: "a@example.com", Name: "Abe", Role: domain.RoleTenant})
	_, _ = users.Create(context.Background(), &domain.User{Email: "m@example.com", Name: "Max", Role: domain.RolePropertyManager})

	if _, err := svc.List(context.Background(), tenantOne, ports.UserFilter{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for tenant, got %v", err)
	}

	tenants, err := svc.List(context.Background(), managerA, ports.UserFilter{Role: domain.RoleTenant})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tenants) != 2 || tenants[0].Name != "Abe" {
		t.Fatalf("unexpected tenants: %+v", tenants)
	}
}
