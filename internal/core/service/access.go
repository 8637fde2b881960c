package service

import (
	"fmt"

	"github.com/rentsoft/property-api/internal/core/domain"
)

// AccessPolicy decides how far a caller's queries are narrowed.
type AccessPolicy struct {
	// StrictManagerScope narrows nested listings and dashboard activity
	// figures for property managers to rows under their own properties.
	// When false managers see those collections unscoped.
	StrictManagerScope bool
}

// portfolioScope returns the manager id property and unit counts are
// restricted to, or "" when the caller sees every property.
func (p AccessPolicy) portfolioScope(caller domain.Identity) string {
	if caller.IsManager() {
		return caller.UserID
	}
	return ""
}

// activityScope returns the (tenant, manager) ownership pair applied to
// leases, applications, maintenance requests and payments.
func (p AccessPolicy) activityScope(caller domain.Identity) (tenantID, managerID string) {
	switch {
	case caller.IsTenant():
		return caller.UserID, ""
	case caller.IsManager() && p.StrictManagerScope:
		return "", caller.UserID
	}
	return "", ""
}

func requireIdentity(caller domain.Identity) error {
	if caller.UserID == "" || !caller.Role.Valid() {
		return domain.ErrUnauthenticated
	}
	return nil
}

func requireRole(caller domain.Identity, roles ...domain.Role) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}
	if !caller.HasRole(roles...) {
		return domain.ErrForbidden
	}
	return nil
}

// requireManagerOf allows administrators and the manager who owns the property.
func requireManagerOf(caller domain.Identity, managerID string) error {
	if err := requireIdentity(caller); err != nil {
		return err
	}
	if caller.IsAdmin() || (caller.IsManager() && caller.UserID == managerID) {
		return nil
	}
	return domain.ErrForbidden
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, fmt.Sprintf(format, args...))
}
