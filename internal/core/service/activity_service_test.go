package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

func TestApplicationService_Create_OwnedByCaller(t *testing.T) {
	repo := &stubApplicationRepo{}
	units := newStubUnitRepo(&domain.Unit{ID: "u-1"})
	svc := NewApplicationService(repo, units, AccessPolicy{}, zerolog.Nop())

	app, err := svc.Create(context.Background(), tenantOne, ports.CreateApplicationInput{UnitID: "u-1", FirstName: "Tia"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if app.ApplicantID != tenantOne.UserID || app.Status != domain.ApplicationPending {
		t.Fatalf("unexpected application: %+v", app)
	}
	if app.SubmittedAt.IsZero() {
		t.Fatalf("expected submittedAt to be set")
	}

	if _, err := svc.Create(context.Background(), tenantOne, ports.CreateApplicationInput{UnitID: "missing"}); !errors.Is(err, domain.ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound, got %v", err)
	}
}

func TestApplicationService_List_Scope(t *testing.T) {
	repo := &stubApplicationRepo{}
	svc := NewApplicationService(repo, newStubUnitRepo(), AccessPolicy{StrictManagerScope: true}, zerolog.Nop())

	if _, err := svc.List(context.Background(), tenantOne, ports.ApplicationFilter{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastFilter.ApplicantID != tenantOne.UserID {
		t.Fatalf("expected applicant scope, got %+v", repo.lastFilter)
	}

	if _, err := svc.List(context.Background(), managerA, ports.ApplicationFilter{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastFilter.ManagerID != managerA.UserID || repo.lastFilter.ApplicantID != "" {
		t.Fatalf("expected strict manager scope, got %+v", repo.lastFilter)
	}
}

func TestMaintenanceService_Create(t *testing.T) {
	repo := &stubMaintenanceRepo{}
	units := newStubUnitRepo(&domain.Unit{ID: "u-1"})
	svc := NewMaintenanceService(repo, units, AccessPolicy{}, zerolog.Nop())

	req, err := svc.Create(context.Background(), tenantOne, ports.CreateMaintenanceInput{UnitID: "u-1", Title: "Leaky tap"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if req.TenantID != tenantOne.UserID || req.Priority != domain.PriorityMedium || req.Status != domain.MaintenanceOpen {
		t.Fatalf("unexpected request: %+v", req)
	}

	if _, err := svc.Create(context.Background(), tenantOne, ports.CreateMaintenanceInput{UnitID: "u-1", Title: "x", Priority: "CRITICAL"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.Create(context.Background(), tenantOne, ports.CreateMaintenanceInput{UnitID: "missing", Title: "x"}); !errors.Is(err, domain.ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound, got %v", err)
	}
}

func TestMaintenanceService_List_RejectsUnknownPriority(t *testing.T) {
	repo := &stubMaintenanceRepo{}
	svc := NewMaintenanceService(repo, newStubUnitRepo(), AccessPolicy{}, zerolog.Nop())

	if _, err := svc.List(context.Background(), adminID, ports.MaintenanceFilter{Priority: "whenever"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if repo.listCalls != 0 {
		t.Fatalf("expected no query to be issued")
	}
}

func TestPaymentService_Create(t *testing.T) {
	repo := &stubPaymentRepo{}
	leases := newStubLeaseRepo(newStubUnitRepo(), &domain.Lease{ID: "l-1"})
	svc := NewPaymentService(repo, leases, AccessPolicy{}, zerolog.Nop())
	due := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	p, err := svc.Create(context.Background(), tenantOne, ports.CreatePaymentInput{LeaseID: "l-1", Amount: 1500, DueDate: due})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.PayerID != tenantOne.UserID || p.Type != domain.PaymentRent || p.Status != domain.PaymentPending {
		t.Fatalf("unexpected payment: %+v", p)
	}

	if _, err := svc.Create(context.Background(), tenantOne, ports.CreatePaymentInput{LeaseID: "missing", Amount: 1, DueDate: due}); !errors.Is(err, domain.ErrLeaseNotFound) {
		t.Fatalf("expected ErrLeaseNotFound, got %v", err)
	}
	if _, err := svc.Create(context.Background(), tenantOne, ports.CreatePaymentInput{LeaseID: "l-1", Amount: 0, DueDate: due}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for zero amount, got %v", err)
	}
}

func TestPaymentService_List_TenantScope(t *testing.T) {
	repo := &stubPaymentRepo{}
	svc := NewPaymentService(repo, newStubLeaseRepo(newStubUnitRepo()), AccessPolicy{}, zerolog.Nop())

	if _, err := svc.List(context.Background(), tenantOne, ports.PaymentFilter{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastFilter.PayerID != tenantOne.UserID {
		t.Fatalf("expected payer scope, got %+v", repo.lastFilter)
	}
}

func TestDashboardService_Scopes(t *testing.T) {
	cases := []struct {
		name   string
		policy AccessPolicy
		caller domain.Identity
		want   ports.DashboardScope
	}{
		{"admin", AccessPolicy{}, adminID, ports.DashboardScope{}},
		{"tenant", AccessPolicy{}, tenantOne, ports.DashboardScope{TenantID: tenantOne.UserID}},
		{"manager", AccessPolicy{}, managerA, ports.DashboardScope{PortfolioManagerID: managerA.UserID}},
		{"strict manager", AccessPolicy{StrictManagerScope: true}, managerA, ports.DashboardScope{
			PortfolioManagerID: managerA.UserID,
			ActivityManagerID:  managerA.UserID,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubDashboardRepo{}
			svc := NewDashboardService(repo, tc.policy)
			if _, err := svc.Summary(context.Background(), tc.caller); err != nil {
				t.Fatalf("summary failed: %v", err)
			}
			if repo.lastScope != tc.want {
				t.Fatalf("expected scope %+v, got %+v", tc.want, repo.lastScope)
			}
		})
	}
}
