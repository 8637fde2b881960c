package service

import (
	"context"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

type DashboardService struct {
	repo   ports.DashboardRepository
	policy AccessPolicy
}

func NewDashboardService(repo ports.DashboardRepository, policy AccessPolicy) *DashboardService {
	return &DashboardService{repo: repo, policy: policy}
}

// Summary computes the caller's dashboard. Property and unit counts follow the
// portfolio scope; the remaining figures follow the activity scope.
func (s *DashboardService) Summary(ctx context.Context, caller domain.Identity) (*domain.DashboardSummary, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	scope := ports.DashboardScope{PortfolioManagerID: s.policy.portfolioScope(caller)}
	scope.TenantID, scope.ActivityManagerID = s.policy.activityScope(caller)
	return s.repo.Summary(ctx, scope)
}
