package ports

import (
	"context"

	"github.com/rentsoft/property-api/internal/core/domain"
)

// UnitRepository defines persistence for units.
type UnitRepository interface {
	// List returns units newest first with property summary, lease count and
	// application count populated.
	List(ctx context.Context, filter UnitFilter) ([]*domain.Unit, error)
	FindByID(ctx context.Context, id string) (*domain.Unit, error)
	// Create stores a unit. A duplicate unit number within the property
	// yields domain.ErrUnitNumberTaken.
	Create(ctx context.Context, u *domain.Unit) (*domain.Unit, error)
	Update(ctx context.Context, u *domain.Unit) (*domain.Unit, error)
	// CountActiveLeases returns the number of ACTIVE leases on the unit.
	CountActiveLeases(ctx context.Context, unitID string) (int64, error)
}
