package sqldb

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

// priorityOrder sorts URGENT first. Priorities are stored as text, so the
// rank is computed in SQL.
var priorityOrder = func() string {
	var b strings.Builder
	b.WriteString("CASE priority")
	for _, p := range []domain.Priority{domain.PriorityUrgent, domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow} {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", p, p.Rank())
	}
	b.WriteString(" ELSE 0 END DESC")
	return b.String()
}()

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) List(ctx context.Context, filter ports.MaintenanceFilter) ([]*domain.MaintenanceRequest, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	q := db.Model(&maintenanceModel{}).Preload("Unit.Property").Preload("Tenant")
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", string(filter.Priority))
	}
	if filter.UnitID != "" {
		q = q.Where("unit_id = ?", filter.UnitID)
	}
	if filter.TenantID != "" {
		q = q.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.ManagerID != "" {
		q = q.Where("unit_id IN (?)", managedUnits(db, filter.ManagerID))
	}

	var rows []maintenanceModel
	if err := q.Order(priorityOrder).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	out := make([]*domain.MaintenanceRequest, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainMaintenance(&rows[i]))
	}
	return out, nil
}

func (r *MaintenanceRepository) Create(ctx context.Context, req *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	m := &maintenanceModel{
		Base:        Base{ID: req.ID, CreatedAt: req.CreatedAt, UpdatedAt: req.UpdatedAt},
		UnitID:      req.UnitID,
		TenantID:    req.TenantID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    string(req.Priority),
		Status:      string(req.Status),
		Category:    req.Category,
		ImageURLs:   req.ImageURLs,
	}
	if err := db.Omit(clause.Associations).Create(m).Error; err != nil {
		return nil, fmt.Errorf("insert maintenance request: %w", err)
	}

	var created maintenanceModel
	if err := db.Preload("Unit.Property").Preload("Tenant").Where("id = ?", m.ID).First(&created).Error; err != nil {
		return nil, fmt.Errorf("reload maintenance request: %w", err)
	}
	return toDomainMaintenance(&created), nil
}
