package sqldb

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

type LeaseRepository struct {
	db *gorm.DB
}

func NewLeaseRepository(db *gorm.DB) *LeaseRepository {
	return &LeaseRepository{db: db}
}

func (r *LeaseRepository) List(ctx context.Context, filter ports.LeaseFilter) ([]*domain.Lease, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	q := db.Model(&leaseModel{}).Preload("Unit.Property").Preload("Tenant")
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
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

	var rows []leaseModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list leases: %w", err)
	}

	out := make([]*domain.Lease, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainLease(&rows[i]))
	}
	if err := withPaymentCounts(db, out); err != nil {
		return nil, err
	}
	return out, nil
}

func withPaymentCounts(db *gorm.DB, leases []*domain.Lease) error {
	ids := make([]string, 0, len(leases))
	for _, l := range leases {
		ids = append(ids, l.ID)
	}
	counts, err := countBy(db, &paymentModel{}, "lease_id", ids)
	if err != nil {
		return err
	}
	for _, l := range leases {
		l.PaymentCount = counts[l.ID]
	}
	return nil
}

func (r *LeaseRepository) FindByID(ctx context.Context, id string) (*domain.Lease, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()
	return r.find(db, id)
}

func (r *LeaseRepository) find(db *gorm.DB, id string) (*domain.Lease, error) {
	var m leaseModel
	if err := db.Preload("Unit.Property").Preload("Tenant").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrLeaseNotFound, "find lease")
	}
	l := toDomainLease(&m)
	if err := withPaymentCounts(db, []*domain.Lease{l}); err != nil {
		return nil, err
	}
	return l, nil
}

// Create inserts the lease and, when its status occupies the unit, marks the
// unit OCCUPIED in the same transaction.
func (r *LeaseRepository) Create(ctx context.Context, l *domain.Lease) (*domain.Lease, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	m := &leaseModel{
		Base:            Base{ID: l.ID, CreatedAt: l.CreatedAt, UpdatedAt: l.UpdatedAt},
		UnitID:          l.UnitID,
		TenantID:        l.TenantID,
		Status:          string(l.Status),
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		MonthlyRent:     l.MonthlyRent,
		SecurityDeposit: l.SecurityDeposit,
		LateFeeAmount:   l.LateFeeAmount,
		LateFeeDay:      l.LateFeeDay,
		PaymentDueDay:   l.PaymentDueDay,
		Terms:           l.Terms,
		SpecialClauses:  l.SpecialClauses,
		SignedAt:        l.SignedAt,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return fmt.Errorf("insert lease: %w", err)
		}
		return occupyUnit(tx, m.UnitID, l.Status)
	})
	if err != nil {
		return nil, err
	}
	return r.find(db, m.ID)
}

// UpdateStatus changes the lease status and applies the unit side effect in
// one transaction.
func (r *LeaseRepository) UpdateStatus(ctx context.Context, id string, status domain.LeaseStatus) (*domain.Lease, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		var m leaseModel
		if err := tx.Select("id", "unit_id").Where("id = ?", id).First(&m).Error; err != nil {
			return notFound(err, domain.ErrLeaseNotFound, "find lease")
		}

		err := tx.Model(&leaseModel{}).Where("id = ?", id).Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		}).Error
		if err != nil {
			return fmt.Errorf("update lease status: %w", err)
		}
		return occupyUnit(tx, m.UnitID, status)
	})
	if err != nil {
		return nil, err
	}
	return r.find(db, id)
}

func occupyUnit(tx *gorm.DB, unitID string, status domain.LeaseStatus) error {
	if !status.OccupiesUnit() {
		return nil
	}
	res := tx.Model(&unitModel{}).Where("id = ?", unitID).Updates(map[string]interface{}{
		"status":     string(domain.UnitOccupied),
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return fmt.Errorf("occupy unit: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}
