package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

type LeaseService struct {
	repo   ports.LeaseRepository
	units  ports.UnitRepository
	users  ports.UserRepository
	policy AccessPolicy
	logger zerolog.Logger
}

func NewLeaseService(repo ports.LeaseRepository, units ports.UnitRepository, users ports.UserRepository, policy AccessPolicy, logger zerolog.Logger) *LeaseService {
	return &LeaseService{repo: repo, units: units, users: users, policy: policy, logger: logger}
}

// List returns leases visible to the caller. Tenants only see their own.
func (s *LeaseService) List(ctx context.Context, caller domain.Identity, filter ports.LeaseFilter) ([]*domain.Lease, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	filter.TenantID, filter.ManagerID = s.policy.activityScope(caller)
	return s.repo.List(ctx, filter)
}

// Create stores a lease. A lease created ACTIVE marks its unit OCCUPIED in the
// same transaction.
func (s *LeaseService) Create(ctx context.Context, caller domain.Identity, input ports.CreateLeaseInput) (*domain.Lease, error) {
	if err := requireRole(caller, domain.RoleAdmin, domain.RolePropertyManager); err != nil {
		return nil, err
	}
	if _, err := s.units.FindByID(ctx, input.UnitID); err != nil {
		return nil, err
	}
	tenant, err := s.users.FindByID(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant.Role != domain.RoleTenant {
		return nil, validationError("tenantId must reference a tenant account")
	}

	if input.Status == "" {
		input.Status = domain.LeaseDraft
	}
	if !input.Status.Valid() {
		return nil, validationError("invalid lease status %q", input.Status)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, validationError("startDate and endDate are required")
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, validationError("endDate must be after startDate")
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Lease{
		UnitID:          input.UnitID,
		TenantID:        input.TenantID,
		Status:          input.Status,
		StartDate:       input.StartDate.UTC(),
		EndDate:         input.EndDate.UTC(),
		MonthlyRent:     input.MonthlyRent,
		SecurityDeposit: input.SecurityDeposit,
		LateFeeAmount:   input.LateFeeAmount,
		LateFeeDay:      input.LateFeeDay,
		PaymentDueDay:   input.PaymentDueDay,
		Terms:           input.Terms,
		SpecialClauses:  input.SpecialClauses,
		SignedAt:        input.SignedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("unit_id", input.UnitID).Msg("failed to create lease")
		return nil, err
	}

	s.logger.Info().
		Str("lease_id", created.ID).
		Str("unit_id", created.UnitID).
		Str("status", string(created.Status)).
		Msg("lease created")
	return created, nil
}

// UpdateStatus moves a lease to status. Activating a lease occupies its unit;
// no other transition touches the unit.
func (s *LeaseService) UpdateStatus(ctx context.Context, caller domain.Identity, id string, status domain.LeaseStatus) (*domain.Lease, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, validationError("invalid lease status %q", status)
	}

	lease, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	managerID := ""
	if lease.Unit != nil && lease.Unit.Property != nil {
		managerID = lease.Unit.Property.ManagerID
	}
	if err := requireManagerOf(caller, managerID); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("lease_id", id).
		Str("from", string(lease.Status)).
		Str("to", string(status)).
		Msg("lease status changed")
	return updated, nil
}
