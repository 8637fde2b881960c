package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

type UnitService struct {
	repo       ports.UnitRepository
	properties ports.PropertyRepository
	policy     AccessPolicy
	logger     zerolog.Logger
}

func NewUnitService(repo ports.UnitRepository, properties ports.PropertyRepository, policy AccessPolicy, logger zerolog.Logger) *UnitService {
	return &UnitService{repo: repo, properties: properties, policy: policy, logger: logger}
}

func (s *UnitService) List(ctx context.Context, caller domain.Identity, filter ports.UnitFilter) ([]*domain.Unit, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	_, filter.ManagerID = s.policy.activityScope(caller)
	return s.repo.List(ctx, filter)
}

func (s *UnitService) Get(ctx context.Context, caller domain.Identity, id string) (*domain.Unit, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Create adds a unit to a property. Managers may only add units to
// properties they manage.
func (s *UnitService) Create(ctx context.Context, caller domain.Identity, input ports.CreateUnitInput) (*domain.Unit, error) {
	if err := requireRole(caller, domain.RoleAdmin, domain.RolePropertyManager); err != nil {
		return nil, err
	}
	property, err := s.properties.FindByID(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}
	if err := requireManagerOf(caller, property.ManagerID); err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = domain.UnitAvailable
	}
	if !input.Status.Valid() {
		return nil, validationError("invalid unit status %q", input.Status)
	}
	unitNumber := strings.TrimSpace(input.UnitNumber)
	if unitNumber == "" {
		return nil, validationError("unitNumber is required")
	}
	imageURLs := input.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Unit{
		PropertyID:      input.PropertyID,
		UnitNumber:      unitNumber,
		Bedrooms:        input.Bedrooms,
		Bathrooms:       input.Bathrooms,
		SquareFeet:      input.SquareFeet,
		MonthlyRent:     input.MonthlyRent,
		SecurityDeposit: input.SecurityDeposit,
		Status:          input.Status,
		Description:     input.Description,
		ImageURLs:       imageURLs,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("unit_id", created.ID).Str("property_id", input.PropertyID).Msg("unit created")
	return created, nil
}

// Update edits a unit, including its status. Leaving an ACTIVE lease does not
// release the unit, so this is how a unit is made AVAILABLE again. A unit
// under an ACTIVE lease stays OCCUPIED.
func (s *UnitService) Update(ctx context.Context, caller domain.Identity, id string, input ports.UpdateUnitInput) (*domain.Unit, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	managerID := ""
	if u.Property != nil {
		managerID = u.Property.ManagerID
	}
	if err := requireManagerOf(caller, managerID); err != nil {
		return nil, err
	}

	if input.Status != nil && !input.Status.Valid() {
		return nil, validationError("invalid unit status %q", *input.Status)
	}
	if input.UnitNumber != nil && strings.TrimSpace(*input.UnitNumber) == "" {
		return nil, validationError("unitNumber must not be empty")
	}
	if input.Status != nil && *input.Status != domain.UnitOccupied {
		active, err := s.repo.CountActiveLeases(ctx, id)
		if err != nil {
			return nil, err
		}
		if active > 0 {
			return nil, domain.ErrUnitLeased
		}
	}

	assign(&u.UnitNumber, input.UnitNumber)
	assign(&u.Bedrooms, input.Bedrooms)
	assign(&u.Bathrooms, input.Bathrooms)
	assign(&u.SquareFeet, input.SquareFeet)
	assign(&u.MonthlyRent, input.MonthlyRent)
	assign(&u.SecurityDeposit, input.SecurityDeposit)
	assign(&u.Status, input.Status)
	assign(&u.Description, input.Description)
	if input.ImageURLs != nil {
		u.ImageURLs = input.ImageURLs
	}
	u.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("unit_id", id).Str("status", string(updated.Status)).Msg("unit updated")
	return updated, nil
}
