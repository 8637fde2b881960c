package handler

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// dateValue accepts either an RFC 3339 timestamp or a calendar date
// (2006-01-02) in request bodies.
type dateValue struct {
	time.Time
}

func (d *dateValue) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", raw)
}

// ptr returns nil for a zero date so optional dates stay unset.
func (d *dateValue) ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// --- Auth & users ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN PROPERTY_MANAGER TENANT"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      userResponse `json:"user"`
}

// --- Summaries embedded in list rows ---

type userSummaryResponse struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type propertySummaryResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
}

type unitSummaryResponse struct {
	ID          string                   `json:"id"`
	UnitNumber  string                   `json:"unitNumber"`
	Status      string                   `json:"status"`
	MonthlyRent float64                  `json:"monthlyRent"`
	Property    *propertySummaryResponse `json:"property,omitempty"`
}

type leaseSummaryResponse struct {
	ID     string               `json:"id"`
	Status string               `json:"status"`
	Unit   *unitSummaryResponse `json:"unit,omitempty"`
	Tenant *userSummaryResponse `json:"tenant,omitempty"`
}

// --- Properties & amenities ---

type createPropertyRequest struct {
	Name        string `json:"name"     validate:"required"`
	Type        string `json:"type"     validate:"required"`
	Status      string `json:"status"`
	Address     string `json:"address"  validate:"required"`
	City        string `json:"city"     validate:"required"`
	State       string `json:"state"    validate:"required"`
	ZipCode     string `json:"zipCode"  validate:"required"`
	Country     string `json:"country"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	ManagerID   string `json:"managerId"`
}

type updatePropertyRequest struct {
	Name        *string `json:"name"     validate:"omitempty,min=1"`
	Type        *string `json:"type"`
	Status      *string `json:"status"`
	Address     *string `json:"address"  validate:"omitempty,min=1"`
	City        *string `json:"city"     validate:"omitempty,min=1"`
	State       *string `json:"state"    validate:"omitempty,min=1"`
	ZipCode     *string `json:"zipCode"  validate:"omitempty,min=1"`
	Country     *string `json:"country"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
}

type amenityRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type amenityResponse struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type propertyResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Type        string                `json:"type"`
	Status      string                `json:"status"`
	Address     string                `json:"address"`
	City        string                `json:"city"`
	State       string                `json:"state"`
	ZipCode     string                `json:"zipCode"`
	Country     string                `json:"country"`
	Description string                `json:"description,omitempty"`
	ImageURL    string                `json:"imageUrl,omitempty"`
	ManagerID   string                `json:"managerId"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
	Manager     *userSummaryResponse  `json:"manager,omitempty"`
	Units       []unitSummaryResponse `json:"units"`
	UnitCount   int64                 `json:"unitCount"`
	Amenities   []amenityResponse     `json:"amenities,omitempty"`
}

// --- Units ---

type createUnitRequest struct {
	PropertyID      string   `json:"propertyId"      validate:"required"`
	UnitNumber      string   `json:"unitNumber"      validate:"required"`
	Bedrooms        int      `json:"bedrooms"        validate:"gte=0"`
	Bathrooms       float64  `json:"bathrooms"       validate:"gte=0"`
	SquareFeet      int      `json:"squareFeet"      validate:"gte=0"`
	MonthlyRent     float64  `json:"monthlyRent"     validate:"required,gt=0"`
	SecurityDeposit float64  `json:"securityDeposit" validate:"gte=0"`
	Status          string   `json:"status"`
	Description     string   `json:"description"`
	ImageURLs       []string `json:"imageUrls"       validate:"omitempty,dive,url"`
}

type updateUnitRequest struct {
	UnitNumber      *string  `json:"unitNumber"      validate:"omitempty,min=1"`
	Bedrooms        *int     `json:"bedrooms"        validate:"omitempty,gte=0"`
	Bathrooms       *float64 `json:"bathrooms"       validate:"omitempty,gte=0"`
	SquareFeet      *int     `json:"squareFeet"      validate:"omitempty,gte=0"`
	MonthlyRent     *float64 `json:"monthlyRent"     validate:"omitempty,gt=0"`
	SecurityDeposit *float64 `json:"securityDeposit" validate:"omitempty,gte=0"`
	Status          *string  `json:"status"`
	Description     *string  `json:"description"`
	ImageURLs       []string `json:"imageUrls"       validate:"omitempty,dive,url"`
}

type unitResponse struct {
	ID               string                   `json:"id"`
	PropertyID       string                   `json:"propertyId"`
	UnitNumber       string                   `json:"unitNumber"`
	Bedrooms         int                      `json:"bedrooms"`
	Bathrooms        float64                  `json:"bathrooms"`
	SquareFeet       int                      `json:"squareFeet"`
	MonthlyRent      float64                  `json:"monthlyRent"`
	SecurityDeposit  float64                  `json:"securityDeposit"`
	Status           string                   `json:"status"`
	Description      string                   `json:"description,omitempty"`
	ImageURLs        []string                 `json:"imageUrls"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
	Property         *propertySummaryResponse `json:"property,omitempty"`
	LeaseCount       int64                    `json:"leaseCount"`
	ApplicationCount int64                    `json:"applicationCount"`
}

// --- Leases ---

type createLeaseRequest struct {
	UnitID          string     `json:"unitId"          validate:"required"`
	TenantID        string     `json:"tenantId"        validate:"required"`
	Status          string     `json:"status"`
	StartDate       dateValue  `json:"startDate"       swaggertype:"string" format:"date"`
	EndDate         dateValue  `json:"endDate"         swaggertype:"string" format:"date"`
	MonthlyRent     float64    `json:"monthlyRent"     validate:"required,gt=0"`
	SecurityDeposit float64    `json:"securityDeposit" validate:"gte=0"`
	LateFeeAmount   float64    `json:"lateFeeAmount"   validate:"gte=0"`
	LateFeeDay      int        `json:"lateFeeDay"      validate:"gte=0,max=31"`
	PaymentDueDay   int        `json:"paymentDueDay"   validate:"gte=0,max=31"`
	Terms           string     `json:"terms"`
	SpecialClauses  string     `json:"specialClauses"`
	SignedAt        *dateValue `json:"signedAt"        swaggertype:"string" format:"date-time"`
}

type leaseStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type leaseResponse struct {
	ID              string               `json:"id"`
	UnitID          string               `json:"unitId"`
	TenantID        string               `json:"tenantId"`
	Status          string               `json:"status"`
	StartDate       time.Time            `json:"startDate"`
	EndDate         time.Time            `json:"endDate"`
	MonthlyRent     float64              `json:"monthlyRent"`
	SecurityDeposit float64              `json:"securityDeposit"`
	LateFeeAmount   float64              `json:"lateFeeAmount"`
	LateFeeDay      int                  `json:"lateFeeDay"`
	PaymentDueDay   int                  `json:"paymentDueDay"`
	Terms           string               `json:"terms,omitempty"`
	SpecialClauses  string               `json:"specialClauses,omitempty"`
	SignedAt        *time.Time           `json:"signedAt,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
	Unit            *unitSummaryResponse `json:"unit,omitempty"`
	Tenant          *userSummaryResponse `json:"tenant,omitempty"`
	PaymentCount    int64                `json:"paymentCount"`
}

// --- Applications ---

type createApplicationRequest struct {
	UnitID           string     `json:"unitId"        validate:"required"`
	FirstName        string     `json:"firstName"     validate:"required"`
	LastName         string     `json:"lastName"      validate:"required"`
	Email            string     `json:"email"         validate:"required,email"`
	Phone            string     `json:"phone"         validate:"required"`
	CurrentAddress   string     `json:"currentAddress"`
	EmploymentStatus string     `json:"employmentStatus"`
	Employer         string     `json:"employer"`
	MonthlyIncome    float64    `json:"monthlyIncome" validate:"gte=0"`
	MoveInDate       *dateValue `json:"moveInDate"    swaggertype:"string" format:"date"`
	NumOccupants     int        `json:"numOccupants"  validate:"gte=0"`
	HasPets          bool       `json:"hasPets"`
	PetDescription   string     `json:"petDescription"`
	EmergencyContact string     `json:"emergencyContact"`
	EmergencyPhone   string     `json:"emergencyPhone"`
}

type applicationResponse struct {
	ID               string               `json:"id"`
	UnitID           string               `json:"unitId"`
	ApplicantID      string               `json:"applicantId"`
	Status           string               `json:"status"`
	FirstName        string               `json:"firstName"`
	LastName         string               `json:"lastName"`
	Email            string               `json:"email"`
	Phone            string               `json:"phone"`
	CurrentAddress   string               `json:"currentAddress,omitempty"`
	EmploymentStatus string               `json:"employmentStatus,omitempty"`
	Employer         string               `json:"employer,omitempty"`
	MonthlyIncome    float64              `json:"monthlyIncome"`
	MoveInDate       *time.Time           `json:"moveInDate,omitempty"`
	NumOccupants     int                  `json:"numOccupants"`
	HasPets          bool                 `json:"hasPets"`
	PetDescription   string               `json:"petDescription,omitempty"`
	EmergencyContact string               `json:"emergencyContact,omitempty"`
	EmergencyPhone   string               `json:"emergencyPhone,omitempty"`
	SubmittedAt      time.Time            `json:"submittedAt"`
	CreatedAt        time.Time            `json:"createdAt"`
	Unit             *unitSummaryResponse `json:"unit,omitempty"`
	Applicant        *userSummaryResponse `json:"applicant,omitempty"`
}

// --- Maintenance ---

type createMaintenanceRequest struct {
	UnitID      string   `json:"unitId"      validate:"required"`
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description" validate:"required"`
	Priority    string   `json:"priority"`
	Category    string   `json:"category"`
	ImageURLs   []string `json:"imageUrls"   validate:"omitempty,dive,url"`
}

type maintenanceResponse struct {
	ID          string               `json:"id"`
	UnitID      string               `json:"unitId"`
	TenantID    string               `json:"tenantId"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Priority    string               `json:"priority"`
	Status      string               `json:"status"`
	Category    string               `json:"category,omitempty"`
	ImageURLs   []string             `json:"imageUrls"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	Unit        *unitSummaryResponse `json:"unit,omitempty"`
	Tenant      *userSummaryResponse `json:"tenant,omitempty"`
}

// --- Payments ---

type createPaymentRequest struct {
	LeaseID       string     `json:"leaseId"  validate:"required"`
	Amount        float64    `json:"amount"   validate:"required,gt=0"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	DueDate       dateValue  `json:"dueDate"  swaggertype:"string" format:"date"`
	PaidDate      *dateValue `json:"paidDate" swaggertype:"string" format:"date"`
	PaymentMethod string     `json:"paymentMethod"`
	TransactionID string     `json:"transactionId"`
	Notes         string     `json:"notes"`
}

type paymentResponse struct {
	ID            string                `json:"id"`
	LeaseID       string                `json:"leaseId"`
	PayerID       string                `json:"payerId"`
	Amount        float64               `json:"amount"`
	Type          string                `json:"type"`
	Status        string                `json:"status"`
	DueDate       time.Time             `json:"dueDate"`
	PaidDate      *time.Time            `json:"paidDate,omitempty"`
	PaymentMethod string                `json:"paymentMethod,omitempty"`
	TransactionID string                `json:"transactionId,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	Lease         *leaseSummaryResponse `json:"lease,omitempty"`
	Payer         *userSummaryResponse  `json:"payer,omitempty"`
}
