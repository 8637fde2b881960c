package sqldb

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Base carries the identifier and timestamps shared by every table.
type Base struct {
	ID        string `gorm:"primaryKey;size:36"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Base) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

type userModel struct {
	Base
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string `gorm:"size:255;not null"`
	Phone        string `gorm:"size:64"`
	Role         string `gorm:"size:32;index;not null"`
}

func (userModel) TableName() string { return "users" }

type propertyModel struct {
	Base
	Name        string `gorm:"size:255;not null"`
	Type        string `gorm:"size:32;not null"`
	Status      string `gorm:"size:32;index;not null"`
	Address     string `gorm:"not null"`
	City        string `gorm:"size:128"`
	State       string `gorm:"size:64"`
	ZipCode     string `gorm:"size:32"`
	Country     string `gorm:"size:64"`
	Description string
	ImageURL    string
	ManagerID   string         `gorm:"size:36;index;not null"`
	Manager     userModel      `gorm:"foreignKey:ManagerID"`
	Units       []unitModel    `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Amenities   []amenityModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

func (propertyModel) TableName() string { return "properties" }

type unitModel struct {
	Base
	PropertyID      string `gorm:"size:36;not null;uniqueIndex:idx_unit_property_number"`
	UnitNumber      string `gorm:"size:64;not null;uniqueIndex:idx_unit_property_number"`
	Bedrooms        int
	Bathrooms       float64
	SquareFeet      int
	MonthlyRent     float64
	SecurityDeposit float64
	Status          string `gorm:"size:32;index;not null"`
	Description     string
	ImageURLs       datatypes.JSONSlice[string]
	Property        propertyModel      `gorm:"foreignKey:PropertyID"`
	Leases          []leaseModel       `gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE"`
	Applications    []applicationModel `gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE"`
	Requests        []maintenanceModel `gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE"`
}

func (unitModel) TableName() string { return "units" }

type leaseModel struct {
	Base
	UnitID          string `gorm:"size:36;index;not null"`
	TenantID        string `gorm:"size:36;index;not null"`
	Status          string `gorm:"size:32;index;not null"`
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
	Unit            unitModel      `gorm:"foreignKey:UnitID"`
	Tenant          userModel      `gorm:"foreignKey:TenantID"`
	Payments        []paymentModel `gorm:"foreignKey:LeaseID;constraint:OnDelete:CASCADE"`
}

func (leaseModel) TableName() string { return "leases" }

type applicationModel struct {
	Base
	UnitID           string `gorm:"size:36;index;not null"`
	ApplicantID      string `gorm:"size:36;index;not null"`
	Status           string `gorm:"size:32;index;not null"`
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
	SubmittedAt      time.Time `gorm:"index"`
	Unit             unitModel `gorm:"foreignKey:UnitID"`
	Applicant        userModel `gorm:"foreignKey:ApplicantID"`
}

func (applicationModel) TableName() string { return "applications" }

type maintenanceModel struct {
	Base
	UnitID      string `gorm:"size:36;index;not null"`
	TenantID    string `gorm:"size:36;index;not null"`
	Title       string `gorm:"not null"`
	Description string
	Priority    string `gorm:"size:16;index;not null"`
	Status      string `gorm:"size:32;index;not null"`
	Category    string
	ImageURLs   datatypes.JSONSlice[string]
	Unit        unitModel `gorm:"foreignKey:UnitID"`
	Tenant      userModel `gorm:"foreignKey:TenantID"`
}

func (maintenanceModel) TableName() string { return "maintenance_requests" }

type paymentModel struct {
	Base
	LeaseID       string `gorm:"size:36;index;not null"`
	PayerID       string `gorm:"size:36;index;not null"`
	Amount        float64
	Type          string    `gorm:"size:32;not null"`
	Status        string    `gorm:"size:32;index;not null"`
	DueDate       time.Time `gorm:"index"`
	PaidDate      *time.Time
	PaymentMethod string
	TransactionID string
	Notes         string
	Lease         leaseModel `gorm:"foreignKey:LeaseID"`
	Payer         userModel  `gorm:"foreignKey:PayerID"`
}

func (paymentModel) TableName() string { return "payments" }

type amenityModel struct {
	Base
	PropertyID  string `gorm:"size:36;index;not null"`
	Name        string `gorm:"not null"`
	Description string
}

func (amenityModel) TableName() string { return "amenities" }

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&userModel{},
		&propertyModel{},
		&amenityModel{},
		&unitModel{},
		&leaseModel{},
		&applicationModel{},
		&maintenanceModel{},
		&paymentModel{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
