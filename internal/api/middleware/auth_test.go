package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rentsoft/property-api/internal/core/domain"
)

type stubAuthenticator struct {
	identity domain.Identity
	err      error
	token    string
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (domain.Identity, error) {
	s.token = token
	return s.identity, s.err
}

func runAuth(t *testing.T, authn Authenticator, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(authn)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	authn := &stubAuthenticator{identity: domain.Identity{UserID: "u-1", Role: domain.RoleAdmin}}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(authn)(func(c echo.Context) error {
		identity, ok := IdentityFrom(c)
		if !ok {
			t.Fatalf("identity not set")
		}
		if identity.UserID != "u-1" || identity.Role != domain.RoleAdmin {
			t.Fatalf("unexpected identity: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if authn.token != "abc.def.ghi" {
		t.Fatalf("unexpected token passed to authenticator: %q", authn.token)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, called := runAuth(t, &stubAuthenticator{}, "")
	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	for _, header := range []string{"Token abc", "Bearer", "Bearer   "} {
		rec, called := runAuth(t, &stubAuthenticator{}, header)
		if called {
			t.Fatalf("should not reach next for %q", header)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %q, got %d", header, rec.Code)
		}
	}
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	rec, called := runAuth(t, &stubAuthenticator{err: domain.ErrUnauthenticated}, "bearer revoked")
	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_AuthenticatorFailure(t *testing.T) {
	rec, called := runAuth(t, &stubAuthenticator{err: errors.New("redis down")}, "Bearer tok")
	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
