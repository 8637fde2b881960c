package sqldb

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func preloadPayment(db *gorm.DB) *gorm.DB {
	return db.Preload("Lease.Unit.Property").Preload("Lease.Tenant").Preload("Payer")
}

func (r *PaymentRepository) List(ctx context.Context, filter ports.PaymentFilter) ([]*domain.Payment, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	q := preloadPayment(db.Model(&paymentModel{}))
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.LeaseID != "" {
		q = q.Where("lease_id = ?", filter.LeaseID)
	}
	if filter.PayerID != "" {
		q = q.Where("payer_id = ?", filter.PayerID)
	}
	if filter.ManagerID != "" {
		q = q.Where("lease_id IN (?)", managedLeases(db, filter.ManagerID))
	}

	var rows []paymentModel
	if err := q.Order("due_date DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	out := make([]*domain.Payment, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainPayment(&rows[i]))
	}
	return out, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	db, cancel := session(ctx, r.db)
	defer cancel()

	m := &paymentModel{
		Base:          Base{ID: p.ID, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt},
		LeaseID:       p.LeaseID,
		PayerID:       p.PayerID,
		Amount:        p.Amount,
		Type:          string(p.Type),
		Status:        string(p.Status),
		DueDate:       p.DueDate,
		PaidDate:      p.PaidDate,
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		Notes:         p.Notes,
	}
	if err := db.Omit(clause.Associations).Create(m).Error; err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	var created paymentModel
	if err := preloadPayment(db).Where("id = ?", m.ID).First(&created).Error; err != nil {
		return nil, fmt.Errorf("reload payment: %w", err)
	}
	return toDomainPayment(&created), nil
}
