package domain

import "time"

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "PENDING"
	ApplicationUnderReview ApplicationStatus = "UNDER_REVIEW"
	ApplicationApproved    ApplicationStatus = "APPROVED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
	ApplicationWithdrawn   ApplicationStatus = "WITHDRAWN"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationUnderReview, ApplicationApproved, ApplicationRejected, ApplicationWithdrawn:
		return true
	}
	return false
}

// Application is a prospective tenant's request to rent a unit.
type Application struct {
	ID               string
	UnitID           string
	ApplicantID      string
	Status           ApplicationStatus
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	CurrentAddress   string
	EmploymentStatus string
	Employer         string
	MonthlyIncome    float64
	MoveInDate       *time.Time
	NumOccupants     int
	HasPets          bool
	PetDescription   string
	EmergencyContact string
	EmergencyPhone   string
	SubmittedAt      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Populated by reads.
	Unit      *UnitSummary
	Applicant *UserSummary
}
