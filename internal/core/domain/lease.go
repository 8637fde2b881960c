package domain

import "time"

type LeaseStatus string

const (
	LeaseDraft          LeaseStatus = "DRAFT"
	LeaseActive         LeaseStatus = "ACTIVE"
	LeasePendingRenewal LeaseStatus = "PENDING_RENEWAL"
	LeaseExpired        LeaseStatus = "EXPIRED"
)

func (s LeaseStatus) Valid() bool {
	switch s {
	case LeaseDraft, LeaseActive, LeasePendingRenewal, LeaseExpired:
		return true
	}
	return false
}

// OccupiesUnit reports whether a lease in status s holds its unit.
//
// A unit referenced by an ACTIVE lease has status OCCUPIED. Writes
// that move a lease into a status for which OccupiesUnit is true must set the
// unit to OCCUPIED in the same transaction. Leaving ACTIVE does not release
// the unit; unit status is then managed by hand.
func (s LeaseStatus) OccupiesUnit() bool {
	return s == LeaseActive
}

// Lease binds a tenant to a unit for a period.
type Lease struct {
	ID              string
	UnitID          string
	TenantID        string
	Status          LeaseStatus
	StartDate       time.Time
	EndDate         time.Time
	MonthlyRent     float64
	SecurityDeposit float64
	LateFeeAmount   float64
	LateFeeDay      int
	PaymentDueDay   int
	Terms           string
	SpecialClauses  string
	SignedAt        *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Populated by reads.
	Unit         *UnitSummary
	Tenant       *UserSummary
	PaymentCount int64
}

// LeaseSummary is the lease context joined onto payments.
type LeaseSummary struct {
	ID     string
	Status LeaseStatus
	Unit   *UnitSummary
	Tenant *UserSummary
}
