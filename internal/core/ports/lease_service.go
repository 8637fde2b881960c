package ports

import (
	"context"
	"time"

	"github.com/rentsoft/property-api/internal/core/domain"
)

type CreateLeaseInput struct {
	UnitID          string
	TenantID        string
	Status          domain.LeaseStatus
	StartDate       time.Time
	EndDate         time.Time
	MonthlyRent     float64
	SecurityDeposit float64
	LateFeeAmount   float64
	LateFeeDay      int
	PaymentDueDay   int
	Terms           string
	SpecialClauses  string
	SignedAt        *time.Time
}

type LeaseService interface {
	List(ctx context.Context, caller domain.Identity, filter LeaseFilter) ([]*domain.Lease, error)
	Create(ctx context.Context, caller domain.Identity, input CreateLeaseInput) (*domain.Lease, error)
	UpdateStatus(ctx context.Context, caller domain.Identity, id string, status domain.LeaseStatus) (*domain.Lease, error)
}
