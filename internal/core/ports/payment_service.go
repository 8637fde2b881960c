package ports

import (
	"context"
	"time"

	"github.com/rentsoft/property-api/internal/core/domain"
)

type CreatePaymentInput struct {
	LeaseID       string
	Amount        float64
	Type          domain.PaymentType
	Status        domain.PaymentStatus
	DueDate       time.Time
	PaidDate      *time.Time
	PaymentMethod string
	TransactionID string
	Notes         string
}

type PaymentService interface {
	List(ctx context.Context, caller domain.Identity, filter PaymentFilter) ([]*domain.Payment, error)
	Create(ctx context.Context, caller domain.Identity, input CreatePaymentInput) (*domain.Payment, error)
}
