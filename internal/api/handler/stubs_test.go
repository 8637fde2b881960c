package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rentsoft/property-api/internal/api/middleware"
	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

var (
	adminCaller   = domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}
	managerCaller = domain.Identity{UserID: "manager-1", Role: domain.RolePropertyManager}
	tenantCaller  = domain.Identity{UserID: "tenant-1", Role: domain.RoleTenant}
)

// newContext builds an echo context with the validator registered and, when
// caller is non-nil, the identity the Auth middleware would have injected.
func newContext(method, target, body string, caller *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if caller != nil {
		c.Set(middleware.IdentityKey, *caller)
	}
	return c, rec
}

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	logoutFn   func(ctx context.Context, caller domain.Identity) error
	meFn       func(ctx context.Context, caller domain.Identity) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Authenticate(context.Context, string) (domain.Identity, error) {
	return domain.Identity{}, domain.ErrUnauthenticated
}

func (s *stubAuthService) Logout(ctx context.Context, caller domain.Identity) error {
	return s.logoutFn(ctx, caller)
}

func (s *stubAuthService) Me(ctx context.Context, caller domain.Identity) (*domain.User, error) {
	return s.meFn(ctx, caller)
}

type stubPropertyService struct {
	listFn          func(ctx context.Context, caller domain.Identity, filter ports.PropertyFilter) ([]*domain.Property, error)
	getFn           func(ctx context.Context, caller domain.Identity, id string) (*domain.Property, error)
	createFn        func(ctx context.Context, caller domain.Identity, input ports.CreatePropertyInput) (*domain.Property, error)
	updateFn        func(ctx context.Context, caller domain.Identity, id string, input ports.UpdatePropertyInput) (*domain.Property, error)
	deleteFn        func(ctx context.Context, caller domain.Identity, id string) error
	listAmenitiesFn func(ctx context.Context, caller domain.Identity, propertyID string) ([]*domain.Amenity, error)
	addAmenityFn    func(ctx context.Context, caller domain.Identity, propertyID string, input ports.AmenityInput) (*domain.Amenity, error)
}

func (s *stubPropertyService) List(ctx context.Context, caller domain.Identity, filter ports.PropertyFilter) ([]*domain.Property, error) {
	return s.listFn(ctx, caller, filter)
}

func (s *stubPropertyService) Get(ctx context.Context, caller domain.Identity, id string) (*domain.Property, error) {
	return s.getFn(ctx, caller, id)
}

func (s *stubPropertyService) Create(ctx context.Context, caller domain.Identity, input ports.CreatePropertyInput) (*domain.Property, error) {
	return s.createFn(ctx, caller, input)
}

func (s *stubPropertyService) Update(ctx context.Context, caller domain.Identity, id string, input ports.UpdatePropertyInput) (*domain.Property, error) {
	return s.updateFn(ctx, caller, id, input)
}

func (s *stubPropertyService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	return s.deleteFn(ctx, caller, id)
}

func (s *stubPropertyService) ListAmenities(ctx context.Context, caller domain.Identity, propertyID string) ([]*domain.Amenity, error) {
	return s.listAmenitiesFn(ctx, caller, propertyID)
}

func (s *stubPropertyService) AddAmenity(ctx context.Context, caller domain.Identity, propertyID string, input ports.AmenityInput) (*domain.Amenity, error) {
	return s.addAmenityFn(ctx, caller, propertyID, input)
}

type stubLeaseService struct {
	listFn         func(ctx context.Context, caller domain.Identity, filter ports.LeaseFilter) ([]*domain.Lease, error)
	createFn       func(ctx context.Context, caller domain.Identity, input ports.CreateLeaseInput) (*domain.Lease, error)
	updateStatusFn func(ctx context.Context, caller domain.Identity, id string, status domain.LeaseStatus) (*domain.Lease, error)
}

func (s *stubLeaseService) List(ctx context.Context, caller domain.Identity, filter ports.LeaseFilter) ([]*domain.Lease, error) {
	return s.listFn(ctx, caller, filter)
}

func (s *stubLeaseService) Create(ctx context.Context, caller domain.Identity, input ports.CreateLeaseInput) (*domain.Lease, error) {
	return s.createFn(ctx, caller, input)
}

func (s *stubLeaseService) UpdateStatus(ctx context.Context, caller domain.Identity, id string, status domain.LeaseStatus) (*domain.Lease, error) {
	return s.updateStatusFn(ctx, caller, id, status)
}

type stubMaintenanceService struct {
	listFn   func(ctx context.Context, caller domain.Identity, filter ports.MaintenanceFilter) ([]*domain.MaintenanceRequest, error)
	createFn func(ctx context.Context, caller domain.Identity, input ports.CreateMaintenanceInput) (*domain.MaintenanceRequest, error)
}

func (s *stubMaintenanceService) List(ctx context.Context, caller domain.Identity, filter ports.MaintenanceFilter) ([]*domain.MaintenanceRequest, error) {
	return s.listFn(ctx, caller, filter)
}

func (s *stubMaintenanceService) Create(ctx context.Context, caller domain.Identity, input ports.CreateMaintenanceInput) (*domain.MaintenanceRequest, error) {
	return s.createFn(ctx, caller, input)
}
