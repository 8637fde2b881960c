package ports

import (
	"context"

	"github.com/rentsoft/property-api/internal/core/domain"
)

// MaintenanceRepository defines persistence for maintenance requests.
type MaintenanceRepository interface {
	// List orders by priority rank (URGENT first), then newest first.
	List(ctx context.Context, filter MaintenanceFilter) ([]*domain.MaintenanceRequest, error)
	Create(ctx context.Context, m *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error)
}
