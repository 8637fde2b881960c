package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentsoft/property-api/internal/api/middleware"
	"github.com/rentsoft/property-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: an identity without a
// user id or with an unknown role is structurally present but unusable.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || identity.UserID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if !identity.Role.Valid() {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token carries an unknown role")
	}
	return identity, nil
}

// bindAndValidate decodes the request body into req and runs the registered
// validator over it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
