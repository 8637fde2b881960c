package domain

import "time"

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// Rank orders priorities from LOW (1) to URGENT (4). Unknown values rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	}
	return 0
}

type MaintenanceStatus string

const (
	MaintenanceOpen            MaintenanceStatus = "OPEN"
	MaintenanceInProgress      MaintenanceStatus = "IN_PROGRESS"
	MaintenancePendingApproval MaintenanceStatus = "PENDING_APPROVAL"
	MaintenanceCompleted       MaintenanceStatus = "COMPLETED"
	MaintenanceCancelled       MaintenanceStatus = "CANCELLED"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceOpen, MaintenanceInProgress, MaintenancePendingApproval, MaintenanceCompleted, MaintenanceCancelled:
		return true
	}
	return false
}

// Outstanding reports whether the request still needs work.
func (s MaintenanceStatus) Outstanding() bool {
	return s == MaintenanceOpen || s == MaintenanceInProgress
}

// MaintenanceRequest is a repair request filed by a tenant against a unit.
type MaintenanceRequest struct {
	ID          string
	UnitID      string
	TenantID    string
	Title       string
	Description string
	Priority    Priority
	Status      MaintenanceStatus
	Category    string
	ImageURLs   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Populated by reads.
	Unit   *UnitSummary
	Tenant *UserSummary
}
