package domain

import "errors"

var (
	ErrUnauthenticated    = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrPropertyNotFound = errors.New("property not found")
	ErrUnitNotFound     = errors.New("unit not found")
	ErrLeaseNotFound    = errors.New("lease not found")
	ErrUnitNumberTaken  = errors.New("unit number already exists for this property")
	ErrUnitLeased       = errors.New("unit has an active lease")
)
