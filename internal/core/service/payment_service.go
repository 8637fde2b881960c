package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

type PaymentService struct {
	repo   ports.PaymentRepository
	leases ports.LeaseRepository
	policy AccessPolicy
	logger zerolog.Logger
}

func NewPaymentService(repo ports.PaymentRepository, leases ports.LeaseRepository, policy AccessPolicy, logger zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, leases: leases, policy: policy, logger: logger}
}

func (s *PaymentService) List(ctx context.Context, caller domain.Identity, filter ports.PaymentFilter) ([]*domain.Payment, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	filter.PayerID, filter.ManagerID = s.policy.activityScope(caller)
	return s.repo.List(ctx, filter)
}

// Create records a payment made by the caller against a lease.
func (s *PaymentService) Create(ctx context.Context, caller domain.Identity, input ports.CreatePaymentInput) (*domain.Payment, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	if _, err := s.leases.FindByID(ctx, input.LeaseID); err != nil {
		return nil, err
	}

	if input.Type == "" {
		input.Type = domain.PaymentRent
	}
	if input.Status == "" {
		input.Status = domain.PaymentPending
	}
	switch {
	case !input.Type.Valid():
		return nil, validationError("invalid payment type %q", input.Type)
	case !input.Status.Valid():
		return nil, validationError("invalid payment status %q", input.Status)
	case input.Amount <= 0:
		return nil, validationError("amount must be positive")
	case input.DueDate.IsZero():
		return nil, validationError("dueDate is required")
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Payment{
		LeaseID:       input.LeaseID,
		PayerID:       caller.UserID,
		Amount:        input.Amount,
		Type:          input.Type,
		Status:        input.Status,
		DueDate:       input.DueDate.UTC(),
		PaidDate:      input.PaidDate,
		PaymentMethod: input.PaymentMethod,
		TransactionID: input.TransactionID,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("payment_id", created.ID).
		Str("lease_id", input.LeaseID).
		Float64("amount", created.Amount).
		Str("status", string(created.Status)).
		Msg("payment recorded")
	return created, nil
}
