package ports

import (
	"fmt"

	"github.com/rentsoft/property-api/internal/core/domain"
)

// Scope fields on the filters below are set by the service layer from the
// caller's identity, never from request input. An empty scope field means no
// restriction.

func invalidEnum(field string, value any) error {
	return fmt.Errorf("%w: invalid %s %q", domain.ErrValidation, field, value)
}

// UserFilter narrows the user directory.
type UserFilter struct {
	Role domain.Role // optional
}

func (f UserFilter) Validate() error {
	if f.Role != "" && !f.Role.Valid() {
		return invalidEnum("role", f.Role)
	}
	return nil
}

// PropertyFilter narrows property listings.
type PropertyFilter struct {
	Status    domain.PropertyStatus // optional
	ManagerID string                // scope
}

func (f PropertyFilter) Validate() error {
	if f.Status != "" && !f.Status.Valid() {
		return invalidEnum("status", f.Status)
	}
	return nil
}

// UnitFilter narrows unit listings.
type UnitFilter struct {
	PropertyID string            // optional
	Status     domain.UnitStatus // optional
	ManagerID  string            // scope
}

func (f UnitFilter) Validate() error {
	if f.Status != "" && !f.Status.Valid() {
		return invalidEnum("status", f.Status)
	}
	return nil
}

// LeaseFilter narrows lease listings.
type LeaseFilter struct {
	Status    domain.LeaseStatus // optional
	UnitID    string             // optional
	TenantID  string             // scope
	ManagerID string             // scope
}

func (f LeaseFilter) Validate() error {
	if f.Status != "" && !f.Status.Valid() {
		return invalidEnum("status", f.Status)
	}
	return nil
}

// ApplicationFilter narrows application listings.
type ApplicationFilter struct {
	Status      domain.ApplicationStatus // optional
	UnitID      string                   // optional
	ApplicantID string                   // scope
	ManagerID   string                   // scope
}

func (f ApplicationFilter) Validate() error {
	if f.Status != "" && !f.Status.Valid() {
		return invalidEnum("status", f.Status)
	}
	return nil
}

// MaintenanceFilter narrows maintenance request listings.
type MaintenanceFilter struct {
	Status    domain.MaintenanceStatus // optional
	Priority  domain.Priority          // optional
	UnitID    string                   // optional
	TenantID  string                   // scope
	ManagerID string                   // scope
}

func (f MaintenanceFilter) Validate() error {
	if f.Status != "" && !f.Status.Valid() {
		return invalidEnum("status", f.Status)
	}
	if f.Priority != "" && !f.Priority.Valid() {
		return invalidEnum("priority", f.Priority)
	}
	return nil
}

// PaymentFilter narrows payment listings.
type PaymentFilter struct {
	Status    domain.PaymentStatus // optional
	LeaseID   string               // optional
	PayerID   string               // scope
	ManagerID string               // scope
}

func (f PaymentFilter) Validate() error {
	if f.Status != "" && !f.Status.Valid() {
		return invalidEnum("status", f.Status)
	}
	return nil
}

// DashboardScope splits the dashboard into its two scoping rules.
type DashboardScope struct {
	// PortfolioManagerID restricts property and unit counts.
	PortfolioManagerID string
	// TenantID restricts lease, application, maintenance and payment figures
	// to rows owned by the tenant.
	TenantID string
	// ActivityManagerID restricts the same figures to rows under the
	// manager's properties.
	ActivityManagerID string
}
