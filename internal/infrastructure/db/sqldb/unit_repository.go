package sqldb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

type UnitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{db: db}
}

func (r *UnitRepository) List(ctx context.Context, filter ports.UnitFilter) ([]*domain.Unit, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	q := db.Model(&unitModel{}).Preload("Property")
	if filter.PropertyID != "" {
		q = q.Where("property_id = ?", filter.PropertyID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.ManagerID != "" {
		q = q.Where("property_id IN (?)", managedProperties(db, filter.ManagerID))
	}

	var rows []unitModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}

	out := make([]*domain.Unit, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainUnit(&rows[i]))
	}
	if err := withUnitCounts(db, out); err != nil {
		return nil, err
	}
	return out, nil
}

// withUnitCounts fills the lease and application counts of units.
func withUnitCounts(db *gorm.DB, units []*domain.Unit) error {
	ids := make([]string, 0, len(units))
	for _, u := range units {
		ids = append(ids, u.ID)
	}
	leaseCounts, err := countBy(db, &leaseModel{}, "unit_id", ids)
	if err != nil {
		return err
	}
	applicationCounts, err := countBy(db, &applicationModel{}, "unit_id", ids)
	if err != nil {
		return err
	}
	for _, u := range units {
		u.LeaseCount = leaseCounts[u.ID]
		u.ApplicationCount = applicationCounts[u.ID]
	}
	return nil
}

func (r *UnitRepository) FindByID(ctx context.Context, id string) (*domain.Unit, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()
	return r.find(db, id)
}

func (r *UnitRepository) find(db *gorm.DB, id string) (*domain.Unit, error) {
	var m unitModel
	if err := db.Preload("Property").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, notFound(err, domain.ErrUnitNotFound, "find unit")
	}
	u := toDomainUnit(&m)
	if err := withUnitCounts(db, []*domain.Unit{u}); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UnitRepository) Create(ctx context.Context, u *domain.Unit) (*domain.Unit, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	m := fromDomainUnit(u)
	if err := db.Omit(clause.Associations).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUnitNumberTaken
		}
		return nil, fmt.Errorf("insert unit: %w", err)
	}
	return r.find(db, m.ID)
}

func (r *UnitRepository) CountActiveLeases(ctx context.Context, unitID string) (int64, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	var n int64
	err := db.Model(&leaseModel{}).
		Where("unit_id = ? AND status = ?", unitID, string(domain.LeaseActive)).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count active leases: %w", err)
	}
	return n, nil
}

func (r *UnitRepository) Update(ctx context.Context, u *domain.Unit) (*domain.Unit, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	m := fromDomainUnit(u)
	res := db.Model(&unitModel{}).Where("id = ?", u.ID).Updates(map[string]interface{}{
		"unit_number":      m.UnitNumber,
		"bedrooms":         m.Bedrooms,
		"bathrooms":        m.Bathrooms,
		"square_feet":      m.SquareFeet,
		"monthly_rent":     m.MonthlyRent,
		"security_deposit": m.SecurityDeposit,
		"status":           m.Status,
		"description":      m.Description,
		"image_urls":       m.ImageURLs,
		"updated_at":       m.UpdatedAt,
	})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUnitNumberTaken
		}
		return nil, fmt.Errorf("update unit: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrUnitNotFound
	}
	return r.find(db, u.ID)
}
