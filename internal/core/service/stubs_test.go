package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

var (
	adminID   = domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}
	managerA  = domain.Identity{UserID: "manager-a", Role: domain.RolePropertyManager}
	managerB  = domain.Identity{UserID: "manager-b", Role: domain.RolePropertyManager}
	tenantOne = domain.Identity{UserID: "tenant-1", Role: domain.RoleTenant}
)

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo(seed ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range seed {
		r.users[u.ID] = cloneUser(u)
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		r.seq++
		copy.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context, filter ports.UserFilter) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type stubSessionStore struct {
	revoked map[string]time.Duration
	err     error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{revoked: make(map[string]time.Duration)}
}

func (s *stubSessionStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.revoked[tokenID] = ttl
	return nil
}

func (s *stubSessionStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.revoked[tokenID]
	return ok, nil
}

type stubPropertyRepo struct {
	properties map[string]*domain.Property
	amenities  []*domain.Amenity
	lastFilter ports.PropertyFilter
	listCalls  int
	seq        int
}

func newStubPropertyRepo(seed ...*domain.Property) *stubPropertyRepo {
	r := &stubPropertyRepo{properties: make(map[string]*domain.Property)}
	for _, p := range seed {
		clone := *p
		r.properties[p.ID] = &clone
	}
	return r
}

func (r *stubPropertyRepo) List(_ context.Context, filter ports.PropertyFilter) ([]*domain.Property, error) {
	r.listCalls++
	r.lastFilter = filter
	var out []*domain.Property
	for _, p := range r.properties {
		if filter.ManagerID != "" && p.ManagerID != filter.ManagerID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id string) (*domain.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPropertyRepo) Create(_ context.Context, p *domain.Property) (*domain.Property, error) {
	r.seq++
	clone := *p
	clone.ID = fmt.Sprintf("property-%d", r.seq)
	r.properties[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPropertyRepo) Update(_ context.Context, p *domain.Property) (*domain.Property, error) {
	if _, ok := r.properties[p.ID]; !ok {
		return nil, domain.ErrPropertyNotFound
	}
	clone := *p
	r.properties[p.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPropertyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.properties[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(r.properties, id)
	return nil
}

func (r *stubPropertyRepo) ListAmenities(_ context.Context, propertyID string) ([]*domain.Amenity, error) {
	var out []*domain.Amenity
	for _, a := range r.amenities {
		if a.PropertyID == propertyID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubPropertyRepo) CreateAmenity(_ context.Context, a *domain.Amenity) (*domain.Amenity, error) {
	clone := *a
	clone.ID = fmt.Sprintf("amenity-%d", len(r.amenities)+1)
	r.amenities = append(r.amenities, &clone)
	out := clone
	return &out, nil
}

type stubUnitRepo struct {
	units        map[string]*domain.Unit
	activeLeases map[string]int64
	lastFilter   ports.UnitFilter
	seq          int
}

func newStubUnitRepo(seed ...*domain.Unit) *stubUnitRepo {
	r := &stubUnitRepo{units: make(map[string]*domain.Unit), activeLeases: make(map[string]int64)}
	for _, u := range seed {
		clone := *u
		r.units[u.ID] = &clone
	}
	return r
}

func (r *stubUnitRepo) List(_ context.Context, filter ports.UnitFilter) ([]*domain.Unit, error) {
	r.lastFilter = filter
	var out []*domain.Unit
	for _, u := range r.units {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUnitRepo) FindByID(_ context.Context, id string) (*domain.Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, domain.ErrUnitNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUnitRepo) Create(_ context.Context, u *domain.Unit) (*domain.Unit, error) {
	for _, existing := range r.units {
		if existing.PropertyID == u.PropertyID && existing.UnitNumber == u.UnitNumber {
			return nil, domain.ErrUnitNumberTaken
		}
	}
	r.seq++
	clone := *u
	clone.ID = fmt.Sprintf("unit-%d", r.seq)
	r.units[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUnitRepo) Update(_ context.Context, u *domain.Unit) (*domain.Unit, error) {
	clone := *u
	r.units[u.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUnitRepo) CountActiveLeases(_ context.Context, unitID string) (int64, error) {
	return r.activeLeases[unitID], nil
}

// stubLeaseRepo mirrors the transactional unit write of the real repository.
type stubLeaseRepo struct {
	leases     map[string]*domain.Lease
	units      *stubUnitRepo
	lastFilter ports.LeaseFilter
	seq        int
}

func newStubLeaseRepo(units *stubUnitRepo, seed ...*domain.Lease) *stubLeaseRepo {
	r := &stubLeaseRepo{leases: make(map[string]*domain.Lease), units: units}
	for _, l := range seed {
		clone := *l
		r.leases[l.ID] = &clone
	}
	return r
}

func (r *stubLeaseRepo) occupy(unitID string, status domain.LeaseStatus) error {
	if !status.OccupiesUnit() {
		return nil
	}
	u, ok := r.units.units[unitID]
	if !ok {
		return domain.ErrUnitNotFound
	}
	u.Status = domain.UnitOccupied
	return nil
}

func (r *stubLeaseRepo) List(_ context.Context, filter ports.LeaseFilter) ([]*domain.Lease, error) {
	r.lastFilter = filter
	var out []*domain.Lease
	for _, l := range r.leases {
		if filter.TenantID != "" && l.TenantID != filter.TenantID {
			continue
		}
		clone := *l
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubLeaseRepo) FindByID(_ context.Context, id string) (*domain.Lease, error) {
	l, ok := r.leases[id]
	if !ok {
		return nil, domain.ErrLeaseNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *stubLeaseRepo) Create(_ context.Context, l *domain.Lease) (*domain.Lease, error) {
	if err := r.occupy(l.UnitID, l.Status); err != nil {
		return nil, err
	}
	r.seq++
	clone := *l
	clone.ID = fmt.Sprintf("lease-%d", r.seq)
	r.leases[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubLeaseRepo) UpdateStatus(_ context.Context, id string, status domain.LeaseStatus) (*domain.Lease, error) {
	l, ok := r.leases[id]
	if !ok {
		return nil, domain.ErrLeaseNotFound
	}
	if err := r.occupy(l.UnitID, status); err != nil {
		return nil, err
	}
	l.Status = status
	out := *l
	return &out, nil
}

type stubApplicationRepo struct {
	created    []*domain.Application
	lastFilter ports.ApplicationFilter
}

func (r *stubApplicationRepo) List(_ context.Context, filter ports.ApplicationFilter) ([]*domain.Application, error) {
	r.lastFilter = filter
	return r.created, nil
}

func (r *stubApplicationRepo) Create(_ context.Context, a *domain.Application) (*domain.Application, error) {
	clone := *a
	clone.ID = fmt.Sprintf("application-%d", len(r.created)+1)
	r.created = append(r.created, &clone)
	out := clone
	return &out, nil
}

type stubMaintenanceRepo struct {
	created    []*domain.MaintenanceRequest
	lastFilter ports.MaintenanceFilter
	listCalls  int
}

func (r *stubMaintenanceRepo) List(_ context.Context, filter ports.MaintenanceFilter) ([]*domain.MaintenanceRequest, error) {
	r.listCalls++
	r.lastFilter = filter
	return r.created, nil
}

func (r *stubMaintenanceRepo) Create(_ context.Context, m *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	clone := *m
	clone.ID = fmt.Sprintf("request-%d", len(r.created)+1)
	r.created = append(r.created, &clone)
	out := clone
	return &out, nil
}

type stubPaymentRepo struct {
	created    []*domain.Payment
	lastFilter ports.PaymentFilter
}

func (r *stubPaymentRepo) List(_ context.Context, filter ports.PaymentFilter) ([]*domain.Payment, error) {
	r.lastFilter = filter
	return r.created, nil
}

func (r *stubPaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	clone := *p
	clone.ID = fmt.Sprintf("payment-%d", len(r.created)+1)
	r.created = append(r.created, &clone)
	out := clone
	return &out, nil
}

type stubDashboardRepo struct {
	lastScope ports.DashboardScope
}

func (r *stubDashboardRepo) Summary(_ context.Context, scope ports.DashboardScope) (*domain.DashboardSummary, error) {
	r.lastScope = scope
	return &domain.DashboardSummary{}, nil
}
