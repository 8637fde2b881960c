package domain

import "time"

type UnitStatus string

const (
	UnitAvailable   UnitStatus = "AVAILABLE"
	UnitOccupied    UnitStatus = "OCCUPIED"
	UnitMaintenance UnitStatus = "MAINTENANCE"
	UnitReserved    UnitStatus = "RESERVED"
)

func (s UnitStatus) Valid() bool {
	switch s {
	case UnitAvailable, UnitOccupied, UnitMaintenance, UnitReserved:
		return true
	}
	return false
}

// Unit is a rentable space inside a property. UnitNumber is unique per property.
type Unit struct {
	ID              string
	PropertyID      string
	UnitNumber      string
	Bedrooms        int
	Bathrooms       float64
	SquareFeet      int
	MonthlyRent     float64
	SecurityDeposit float64
	Status          UnitStatus
	Description     string
	ImageURLs       []string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Populated by reads.
	Property         *PropertySummary
	LeaseCount       int64
	ApplicationCount int64
}

// Summary returns the unit fields joined onto leases, applications and requests.
func (u *Unit) Summary() *UnitSummary {
	return &UnitSummary{
		ID:          u.ID,
		UnitNumber:  u.UnitNumber,
		Status:      u.Status,
		MonthlyRent: u.MonthlyRent,
		Property:    u.Property,
	}
}

type UnitSummary struct {
	ID          string
	UnitNumber  string
	Status      UnitStatus
	MonthlyRent float64
	Property    *PropertySummary
}
