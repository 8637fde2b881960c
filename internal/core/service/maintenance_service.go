package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

type MaintenanceService struct {
	repo   ports.MaintenanceRepository
	units  ports.UnitRepository
	policy AccessPolicy
	logger zerolog.Logger
}

func NewMaintenanceService(repo ports.MaintenanceRepository, units ports.UnitRepository, policy AccessPolicy, logger zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{repo: repo, units: units, policy: policy, logger: logger}
}

func (s *MaintenanceService) List(ctx context.Context, caller domain.Identity, filter ports.MaintenanceFilter) ([]*domain.MaintenanceRequest, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	filter.TenantID, filter.ManagerID = s.policy.activityScope(caller)
	return s.repo.List(ctx, filter)
}

// Create files a maintenance request on behalf of the caller.
func (s *MaintenanceService) Create(ctx context.Context, caller domain.Identity, input ports.CreateMaintenanceInput) (*domain.MaintenanceRequest, error) {
	if err := requireIdentity(caller); err != nil {
		return nil, err
	}
	if _, err := s.units.FindByID(ctx, input.UnitID); err != nil {
		return nil, err
	}

	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}
	if !input.Priority.Valid() {
		return nil, validationError("invalid priority %q", input.Priority)
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, validationError("title is required")
	}
	imageURLs := input.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.MaintenanceRequest{
		UnitID:      input.UnitID,
		TenantID:    caller.UserID,
		Title:       title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      domain.MaintenanceOpen,
		Category:    input.Category,
		ImageURLs:   imageURLs,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("request_id", created.ID).
		Str("unit_id", input.UnitID).
		Str("priority", string(created.Priority)).
		Msg("maintenance request opened")
	return created, nil
}
