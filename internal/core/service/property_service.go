package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

type PropertyService struct {
	repo   ports.PropertyRepository
	users  ports.UserRepository
	policy AccessPolicy
	logger zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, users ports.UserRepository, policy AccessPolicy, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, users: users, policy: policy, logger: logger}
}

// List returns properties visible to the caller. Managers only see the
// properties they manage.
func (s *PropertyService) List(ctx context.Context, caller domain.Identity, filter ports.PropertyFilter) ([]*domain.Property, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	filter.ManagerID = s.policy.portfolioScope(caller)
	return s.repo.List(ctx, filter)
}

func (s *PropertyService) Get(ctx context.Context, caller domain.Identity, id string) (*domain.Property, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller.IsManager() && p.ManagerID != caller.UserID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func (s *PropertyService) Create(ctx context.Context, caller domain.Identity, input ports.CreatePropertyInput) (*domain.Property, error) {
	if err := requireRole(caller, domain.RoleAdmin, domain.RolePropertyManager); err != nil {
		return nil, err
	}

	managerID := caller.UserID
	if caller.IsAdmin() {
		managerID = strings.TrimSpace(input.ManagerID)
		if managerID == "" {
			return nil, validationError("managerId is required")
		}
		if _, err := s.users.FindByID(ctx, managerID); err != nil {
			return nil, err
		}
	}

	if input.Status == "" {
		input.Status = domain.PropertyActive
	}
	if input.Country == "" {
		input.Country = domain.DefaultCountry
	}
	if !input.Type.Valid() {
		return nil, validationError("invalid property type %q", input.Type)
	}
	if !input.Status.Valid() {
		return nil, validationError("invalid property status %q", input.Status)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Property{
		Name:        input.Name,
		Type:        input.Type,
		Status:      input.Status,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		ZipCode:     input.ZipCode,
		Country:     input.Country,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		ManagerID:   managerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create property")
		return nil, err
	}

	s.logger.Info().Str("property_id", created.ID).Str("manager_id", managerID).Msg("property created")
	return created, nil
}

func (s *PropertyService) Update(ctx context.Context, caller domain.Identity, id string, input ports.UpdatePropertyInput) (*domain.Property, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireManagerOf(caller, p.ManagerID); err != nil {
		return nil, err
	}

	if input.Type != nil && !input.Type.Valid() {
		return nil, validationError("invalid property type %q", *input.Type)
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, validationError("invalid property status %q", *input.Status)
	}

	assign(&p.Name, input.Name)
	assign(&p.Type, input.Type)
	assign(&p.Status, input.Status)
	assign(&p.Address, input.Address)
	assign(&p.City, input.City)
	assign(&p.State, input.State)
	assign(&p.ZipCode, input.ZipCode)
	assign(&p.Country, input.Country)
	assign(&p.Description, input.Description)
	assign(&p.ImageURL, input.ImageURL)
	p.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("property_id", id).Msg("property updated")
	return updated, nil
}

// Delete removes a property and everything under it. Administrators only.
func (s *PropertyService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	if err := requireRole(caller, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("property_id", id).Msg("property deleted")
	return nil
}

func (s *PropertyService) ListAmenities(ctx context.Context, caller domain.Identity, propertyID string) ([]*domain.Amenity, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, propertyID); err != nil {
		return nil, err
	}
	return s.repo.ListAmenities(ctx, propertyID)
}

func (s *PropertyService) AddAmenity(ctx context.Context, caller domain.Identity, propertyID string, input ports.AmenityInput) (*domain.Amenity, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if err := requireManagerOf(caller, p.ManagerID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validationError("name is required")
	}

	return s.repo.CreateAmenity(ctx, &domain.Amenity{
		PropertyID:  propertyID,
		Name:        name,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	})
}

// assign copies *src into dst when src is set.
func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
