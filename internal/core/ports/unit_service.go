package ports

import (
	"context"

	"github.com/rentsoft/property-api/internal/core/domain"
)

type CreateUnitInput struct {
	PropertyID      string
	UnitNumber      string
	Bedrooms        int
	Bathrooms       float64
	SquareFeet      int
	MonthlyRent     float64
	SecurityDeposit float64
	Status          domain.UnitStatus
	Description     string
	ImageURLs       []string
}

// UpdateUnitInput lists the editable fields. Nil fields are left unchanged.
type UpdateUnitInput struct {
	UnitNumber      *string
	Bedrooms        *int
	Bathrooms       *float64
	SquareFeet      *int
	MonthlyRent     *float64
	SecurityDeposit *float64
	Status          *domain.UnitStatus
	Description     *string
	ImageURLs       []string
}

type UnitService interface {
	List(ctx context.Context, caller domain.Identity, filter UnitFilter) ([]*domain.Unit, error)
	Get(ctx context.Context, caller domain.Identity, id string) (*domain.Unit, error)
	Create(ctx context.Context, caller domain.Identity, input CreateUnitInput) (*domain.Unit, error)
	Update(ctx context.Context, caller domain.Identity, id string, input UpdateUnitInput) (*domain.Unit, error)
}
