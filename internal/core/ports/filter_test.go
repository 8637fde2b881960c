package ports

import (
	"errors"
	"testing"

	"github.com/rentsoft/property-api/internal/core/domain"
)

func TestFilters_Validate(t *testing.T) {
	cases := []struct {
		name    string
		filter  interface{ Validate() error }
		wantErr bool
	}{
		{"empty property filter", PropertyFilter{}, false},
		{"known property status", PropertyFilter{Status: domain.PropertyMaintenance}, false},
		{"unknown property status", PropertyFilter{Status: "ARCHIVED"}, true},
		{"unknown unit status", UnitFilter{Status: "vacant"}, true},
		{"lowercase lease status", LeaseFilter{Status: "active"}, true},
		{"known application status", ApplicationFilter{Status: domain.ApplicationUnderReview}, false},
		{"unknown maintenance priority", MaintenanceFilter{Priority: "CRITICAL"}, true},
		{"unknown maintenance status", MaintenanceFilter{Status: "DONE"}, true},
		{"known payment status", PaymentFilter{Status: domain.PaymentRefunded}, false},
		{"unknown user role", UserFilter{Role: "OWNER"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.filter.Validate()
			if tc.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
