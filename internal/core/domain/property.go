package domain

import "time"

type PropertyType string

const (
	PropertyApartment  PropertyType = "APARTMENT"
	PropertyHouse      PropertyType = "HOUSE"
	PropertyCondo      PropertyType = "CONDO"
	PropertyTownhouse  PropertyType = "TOWNHOUSE"
	PropertyCommercial PropertyType = "COMMERCIAL"
)

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyApartment, PropertyHouse, PropertyCondo, PropertyTownhouse, PropertyCommercial:
		return true
	}
	return false
}

type PropertyStatus string

const (
	PropertyActive      PropertyStatus = "ACTIVE"
	PropertyInactive    PropertyStatus = "INACTIVE"
	PropertyMaintenance PropertyStatus = "MAINTENANCE"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyActive, PropertyInactive, PropertyMaintenance:
		return true
	}
	return false
}

// DefaultCountry is stored when a property is created without one.
const DefaultCountry = "USA"

// Property is a managed building or lot. It is owned by exactly one manager.
type Property struct {
	ID          string
	Name        string
	Type        PropertyType
	Status      PropertyStatus
	Address     string
	City        string
	State       string
	ZipCode     string
	Country     string
	Description string
	ImageURL    string
	ManagerID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Populated by reads.
	Manager   *UserSummary
	Units     []UnitSummary
	UnitCount int64
	Amenities []Amenity
}

// Summary returns the property fields joined onto units, leases and requests.
func (p *Property) Summary() *PropertySummary {
	return &PropertySummary{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		City:      p.City,
		State:     p.State,
		ManagerID: p.ManagerID,
	}
}

type PropertySummary struct {
	ID      string
	Name    string
	Address string
	City    string
	State   string
	// ManagerID is carried for ownership checks and not rendered.
	ManagerID string
}

// Amenity is a named feature of a property.
type Amenity struct {
	ID          string
	PropertyID  string
	Name        string
	Description string
	CreatedAt   time.Time
}
