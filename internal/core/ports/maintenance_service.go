package ports

import (
	"context"

	"github.com/rentsoft/property-api/internal/core/domain"
)

type CreateMaintenanceInput struct {
	UnitID      string
	Title       string
	Description string
	Priority    domain.Priority
	Category    string
	ImageURLs   []string
}

type MaintenanceService interface {
	List(ctx context.Context, caller domain.Identity, filter MaintenanceFilter) ([]*domain.MaintenanceRequest, error)
	Create(ctx context.Context, caller domain.Identity, input CreateMaintenanceInput) (*domain.MaintenanceRequest, error)
}
