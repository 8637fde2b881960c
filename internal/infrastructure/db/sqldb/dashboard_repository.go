package sqldb

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Summary runs one count or sum per figure. There is no time window.
func (r *DashboardRepository) Summary(ctx context.Context, scope ports.DashboardScope) (*domain.DashboardSummary, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	properties := func() *gorm.DB {
		q := db.Model(&propertyModel{})
		if scope.PortfolioManagerID != "" {
			q = q.Where("manager_id = ?", scope.PortfolioManagerID)
		}
		return q
	}
	units := func() *gorm.DB {
		q := db.Model(&unitModel{})
		if scope.PortfolioManagerID != "" {
			q = q.Where("property_id IN (?)", managedProperties(db, scope.PortfolioManagerID))
		}
		return q
	}
	// owned narrows lease, application and maintenance queries.
	owned := func(model interface{}, ownerColumn string) *gorm.DB {
		q := db.Model(model)
		if scope.TenantID != "" {
			q = q.Where(ownerColumn+" = ?", scope.TenantID)
		}
		if scope.ActivityManagerID != "" {
			q = q.Where("unit_id IN (?)", managedUnits(db, scope.ActivityManagerID))
		}
		return q
	}
	payments := func() *gorm.DB {
		q := db.Model(&paymentModel{})
		if scope.TenantID != "" {
			q = q.Where("payer_id = ?", scope.TenantID)
		}
		if scope.ActivityManagerID != "" {
			q = q.Where("lease_id IN (?)", managedLeases(db, scope.ActivityManagerID))
		}
		return q
	}

	var s domain.DashboardSummary
	counts := []struct {
		name  string
		dst   *int64
		query *gorm.DB
	}{
		{"properties", &s.TotalProperties, properties()},
		{"units", &s.TotalUnits, units()},
		{"available units", &s.AvailableUnits, units().Where("status = ?", string(domain.UnitAvailable))},
		{"occupied units", &s.OccupiedUnits, units().Where("status = ?", string(domain.UnitOccupied))},
		{"active leases", &s.ActiveLeases, owned(&leaseModel{}, "tenant_id").Where("status = ?", string(domain.LeaseActive))},
		{"pending applications", &s.PendingApplications, owned(&applicationModel{}, "applicant_id").Where("status = ?", string(domain.ApplicationPending))},
		{"open maintenance", &s.OpenMaintenance, owned(&maintenanceModel{}, "tenant_id").Where("status IN ?", []string{
			string(domain.MaintenanceOpen),
			string(domain.MaintenanceInProgress),
		})},
		{"pending payments", &s.PendingPayments, payments().Where("status = ?", string(domain.PaymentPending))},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
	}

	var revenue float64
	err := payments().
		Where("status = ?", string(domain.PaymentCompleted)).
		Select("COALESCE(SUM(amount), 0)").
		Row().
		Scan(&revenue)
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}
	s.TotalRevenue = revenue

	return &s, nil
}
