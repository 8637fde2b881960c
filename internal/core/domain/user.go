package domain

import "time"

// Role determines what a caller may see and change.
type Role string

const (
	RoleAdmin           Role = "ADMIN"
	RolePropertyManager Role = "PROPERTY_MANAGER"
	RoleTenant          Role = "TENANT"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePropertyManager, RoleTenant:
		return true
	}
	return false
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Summary returns the contact fields embedded in other entities' responses.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}

// UserSummary is the subset of a user joined onto related records.
type UserSummary struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// Identity is the authenticated caller of a request. It is passed explicitly
// into every service call; nothing reads it from ambient state.
type Identity struct {
	UserID string
	Email  string
	Role   Role
	// TokenID and ExpiresAt identify the bearer token so it can be revoked.
	TokenID   string
	ExpiresAt time.Time
}

func (i Identity) IsAdmin() bool   { return i.Role == RoleAdmin }
func (i Identity) IsManager() bool { return i.Role == RolePropertyManager }
func (i Identity) IsTenant() bool  { return i.Role == RoleTenant }

// HasRole reports whether the identity holds any of roles.
func (i Identity) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}
