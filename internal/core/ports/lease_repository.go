package ports

import (
	"context"

	"github.com/rentsoft/property-api/internal/core/domain"
)

// LeaseRepository defines persistence for leases.
//
// Create and UpdateStatus write the unit in the same transaction as the lease
// whenever the resulting status occupies the unit (see
// domain.LeaseStatus.OccupiesUnit).
type LeaseRepository interface {
	// List returns leases newest first with unit, property, tenant and payment
	// count populated.
	List(ctx context.Context, filter LeaseFilter) ([]*domain.Lease, error)
	FindByID(ctx context.Context, id string) (*domain.Lease, error)
	Create(ctx context.Context, l *domain.Lease) (*domain.Lease, error)
	UpdateStatus(ctx context.Context, id string, status domain.LeaseStatus) (*domain.Lease, error)
}
