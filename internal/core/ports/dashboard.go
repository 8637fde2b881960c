package ports

import (
	"context"

	"github.com/rentsoft/property-api/internal/core/domain"
)

// DashboardRepository computes the dashboard counters in the store.
type DashboardRepository interface {
	Summary(ctx context.Context, scope DashboardScope) (*domain.DashboardSummary, error)
}

type DashboardService interface {
	Summary(ctx context.Context, caller domain.Identity) (*domain.DashboardSummary, error)
}
