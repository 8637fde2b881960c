package sqldb

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func orderUnits(db *gorm.DB) *gorm.DB {
	return db.Order("unit_number ASC")
}

func (r *PropertyRepository) List(ctx context.Context, filter ports.PropertyFilter) ([]*domain.Property, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	q := db.Model(&propertyModel{}).Preload("Manager").Preload("Units", orderUnits)
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.ManagerID != "" {
		q = q.Where("manager_id = ?", filter.ManagerID)
	}

	var rows []propertyModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	out := make([]*domain.Property, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainProperty(&rows[i]))
	}
	return out, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()
	return r.find(db, id)
}

func (r *PropertyRepository) find(db *gorm.DB, id string) (*domain.Property, error) {
	var m propertyModel
	err := db.Preload("Manager").
		Preload("Units", orderUnits).
		Preload("Amenities", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, notFound(err, domain.ErrPropertyNotFound, "find property")
	}
	return toDomainProperty(&m), nil
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	m := fromDomainProperty(p)
	if err := db.Omit(clause.Associations).Create(m).Error; err != nil {
		return nil, fmt.Errorf("insert property: %w", err)
	}
	return r.find(db, m.ID)
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	m := fromDomainProperty(p)
	res := db.Model(&propertyModel{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":        m.Name,
		"type":        m.Type,
		"status":      m.Status,
		"address":     m.Address,
		"city":        m.City,
		"state":       m.State,
		"zip_code":    m.ZipCode,
		"country":     m.Country,
		"description": m.Description,
		"image_url":   m.ImageURL,
		"updated_at":  m.UpdatedAt,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("update property: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrPropertyNotFound
	}
	return r.find(db, p.ID)
}

// Delete removes the property and every row beneath it in one transaction.
func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	db, cancel := session(ctx, r.db)
	defer cancel()

	return db.Transaction(func(tx *gorm.DB) error {
		units := tx.Session(&gorm.Session{NewDB: true}).Model(&unitModel{}).Select("id").Where("property_id = ?", id)
		leases := tx.Session(&gorm.Session{NewDB: true}).Model(&leaseModel{}).Select("id").Where("unit_id IN (?)", units)

		steps := []struct {
			model interface{}
			query string
			arg   interface{}
		}{
			{&paymentModel{}, "lease_id IN (?)", leases},
			{&leaseModel{}, "unit_id IN (?)", units},
			{&applicationModel{}, "unit_id IN (?)", units},
			{&maintenanceModel{}, "unit_id IN (?)", units},
			{&unitModel{}, "property_id = ?", id},
			{&amenityModel{}, "property_id = ?", id},
		}
		for _, s := range steps {
			if err := tx.Where(s.query, s.arg).Delete(s.model).Error; err != nil {
				return fmt.Errorf("delete property children: %w", err)
			}
		}

		res := tx.Where("id = ?", id).Delete(&propertyModel{})
		if res.Error != nil {
			return fmt.Errorf("delete property: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrPropertyNotFound
		}
		return nil
	})
}

func (r *PropertyRepository) ListAmenities(ctx context.Context, propertyID string) ([]*domain.Amenity, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	var rows []amenityModel
	if err := db.Where("property_id = ?", propertyID).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list amenities: %w", err)
	}
	out := make([]*domain.Amenity, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainAmenity(&rows[i]))
	}
	return out, nil
}

func (r *PropertyRepository) CreateAmenity(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	m := &amenityModel{
		Base:        Base{ID: a.ID, CreatedAt: a.CreatedAt, UpdatedAt: a.CreatedAt},
		PropertyID:  a.PropertyID,
		Name:        a.Name,
		Description: a.Description,
	}
	if err := db.Create(m).Error; err != nil {
		return nil, fmt.Errorf("insert amenity: %w", err)
	}
	return toDomainAmenity(m), nil
}
