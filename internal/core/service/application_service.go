package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

type ApplicationService struct {
	repo   ports.ApplicationRepository
	units  ports.UnitRepository
	policy AccessPolicy
	logger zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, units ports.UnitRepository, policy AccessPolicy, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, units: units, policy: policy, logger: logger}
}

func (s *ApplicationService) List(ctx context.Context, caller domain.Identity, filter ports.ApplicationFilter) ([]*domain.Application, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	filter.ApplicantID, filter.ManagerID = s.policy.activityScope(caller)
	return s.repo.List(ctx, filter)
}

// Create files an application on behalf of the caller.
func (s *ApplicationService) Create(ctx context.Context, caller domain.Identity, input ports.CreateApplicationInput) (*domain.Application, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	if _, err := s.units.FindByID(ctx, input.UnitID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Application{
		UnitID:           input.UnitID,
		ApplicantID:      caller.UserID,
		Status:           domain.ApplicationPending,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		Phone:            input.Phone,
		CurrentAddress:   input.CurrentAddress,
		EmploymentStatus: input.EmploymentStatus,
		Employer:         input.Employer,
		MonthlyIncome:    input.MonthlyIncome,
		MoveInDate:       input.MoveInDate,
		NumOccupants:     input.NumOccupants,
		HasPets:          input.HasPets,
		PetDescription:   input.PetDescription,
		EmergencyContact: input.EmergencyContact,
		EmergencyPhone:   input.EmergencyPhone,
		SubmittedAt:      now,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("application_id", created.ID).Str("unit_id", input.UnitID).Msg("application submitted")
	return created, nil
}
