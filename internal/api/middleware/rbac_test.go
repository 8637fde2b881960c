package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rentsoft/property-api/internal/core/domain"
)

func runRBAC(t *testing.T, identity *domain.Identity, allowed ...domain.Role) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(IdentityKey, *identity)
	}

	called := false
	handler := RBAC(allowed...)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec.Code, called
}

func TestRBAC_Allowed(t *testing.T) {
	code, called := runRBAC(t, &domain.Identity{UserID: "m", Role: domain.RolePropertyManager}, domain.RoleAdmin, domain.RolePropertyManager)
	if !called || code != http.StatusOK {
		t.Fatalf("expected pass-through, got %d", code)
	}
}

func TestRBAC_Forbidden(t *testing.T) {
	code, called := runRBAC(t, &domain.Identity{UserID: "t", Role: domain.RoleTenant}, domain.RoleAdmin)
	if called {
		t.Fatalf("should not reach next")
	}
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestRBAC_MissingIdentity(t *testing.T) {
	code, called := runRBAC(t, nil, domain.RoleAdmin)
	if called {
		t.Fatalf("should not reach next")
	}
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}
