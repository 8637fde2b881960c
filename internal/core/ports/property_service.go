package ports

import (
	"context"

	"github.com/rentsoft/property-api/internal/core/domain"
)

// CreatePropertyInput carries a new property. ManagerID is only honoured for
// administrators; managers always own what they create.
type CreatePropertyInput struct {
	Name        string
	Type        domain.PropertyType
	Status      domain.PropertyStatus
	Address     string
	City        string
	State       string
	ZipCode     string
	Country     string
	Description string
	ImageURL    string
	ManagerID   string
}

// UpdatePropertyInput lists the editable fields. Nil fields are left unchanged.
type UpdatePropertyInput struct {
	Name        *string
	Type        *domain.PropertyType
	Status      *domain.PropertyStatus
	Address     *string
	City        *string
	State       *string
	ZipCode     *string
	Country     *string
	Description *string
	ImageURL    *string
}

type AmenityInput struct {
	Name        string
	Description string
}

type PropertyService interface {
	List(ctx context.Context, caller domain.Identity, filter PropertyFilter) ([]*domain.Property, error)
	Get(ctx context.Context, caller domain.Identity, id string) (*domain.Property, error)
	Create(ctx context.Context, caller domain.Identity, input CreatePropertyInput) (*domain.Property, error)
	Update(ctx context.Context, caller domain.Identity, id string, input UpdatePropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, caller domain.Identity, id string) error

	ListAmenities(ctx context.Context, caller domain.Identity, propertyID string) ([]*domain.Amenity, error)
	AddAmenity(ctx context.Context, caller domain.Identity, propertyID string, input AmenityInput) (*domain.Amenity, error)
}
