package domain

import "errors"

var (
	// ErrInvalidPackage is returned when a package carries impossible values.
	ErrInvalidPackage = errors.New("invalid package")
	// ErrInvalidFleet is returned when the fleet cannot deliver anything.
	ErrInvalidFleet = errors.New("invalid fleet")
	// ErrInvalidOffer marks an offer definition that was ignored.
	ErrInvalidOffer = errors.New("invalid offer")
)
