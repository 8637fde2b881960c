package ports

import (
	"context"

	"github.com/rentsoft/property-api/internal/core/domain"
)

// PropertyRepository defines persistence for properties and their amenities.
type PropertyRepository interface {
	// List returns properties newest first with manager, unit summaries and
	// unit count populated.
	List(ctx context.Context, filter PropertyFilter) ([]*domain.Property, error)
	// FindByID returns the property with manager, units and amenities.
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) (*domain.Property, error)
	// Delete removes the property together with its units and amenities.
	Delete(ctx context.Context, id string) error

	ListAmenities(ctx context.Context, propertyID string) ([]*domain.Amenity, error)
	CreateAmenity(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error)
}
