package sqldb

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) List(ctx context.Context, filter ports.ApplicationFilter) ([]*domain.Application, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	q := db.Model(&applicationModel{}).Preload("Unit.Property").Preload("Applicant")
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.UnitID != "" {
		q = q.Where("unit_id = ?", filter.UnitID)
	}
	if filter.ApplicantID != "" {
		q = q.Where("applicant_id = ?", filter.ApplicantID)
	}
	if filter.ManagerID != "" {
		q = q.Where("unit_id IN (?)", managedUnits(db, filter.ManagerID))
	}

	var rows []applicationModel
	if err := q.Order("submitted_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	out := make([]*domain.Application, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainApplication(&rows[i]))
	}
	return out, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	m := &applicationModel{
		Base:             Base{ID: a.ID, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt},
		UnitID:           a.UnitID,
		ApplicantID:      a.ApplicantID,
		Status:           string(a.Status),
		FirstName:        a.FirstName,
		LastName:         a.LastName,
		Email:            a.Email,
		Phone:            a.Phone,
		CurrentAddress:   a.CurrentAddress,
		EmploymentStatus: a.EmploymentStatus,
		Employer:         a.Employer,
		MonthlyIncome:    a.MonthlyIncome,
		MoveInDate:       a.MoveInDate,
		NumOccupants:     a.NumOccupants,
		HasPets:          a.HasPets,
		PetDescription:   a.PetDescription,
		EmergencyContact: a.EmergencyContact,
		EmergencyPhone:   a.EmergencyPhone,
		SubmittedAt:      a.SubmittedAt,
	}
	if err := db.Omit(clause.Associations).Create(m).Error; err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}

	var created applicationModel
	if err := db.Preload("Unit.Property").Preload("Applicant").Where("id = ?", m.ID).First(&created).Error; err != nil {
		return nil, fmt.Errorf("reload application: %w", err)
	}
	return toDomainApplication(&created), nil
}
