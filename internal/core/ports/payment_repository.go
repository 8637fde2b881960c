package ports

import (
	"context"

	"github.com/rentsoft/property-api/internal/core/domain"
)

// PaymentRepository defines persistence for payments.
type PaymentRepository interface {
	// List orders by due date, latest first.
	List(ctx context.Context, filter PaymentFilter) ([]*domain.Payment, error)
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
}
