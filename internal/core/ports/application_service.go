package ports

import (
	"context"
	"time"

	"github.com/rentsoft/property-api/internal/core/domain"
)

type CreateApplicationInput struct {
	UnitID           string
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
}

type ApplicationService interface {
	List(ctx context.Context, caller domain.Identity, filter ApplicationFilter) ([]*domain.Application, error)
	Create(ctx context.Context, caller domain.Identity, input CreateApplicationInput) (*domain.Application, error)
}
