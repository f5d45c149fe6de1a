package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Represents a single parcel handled by the estimator.
// Weight and Distance are fixed once the package is read. Cost fields are
// populated by the cost calculator; DeliveryTime is written exactly once by
// the delivery scheduler when the package is dispatched.
type Package struct {
	ID           string
	Weight       int
	Distance     int
	OfferCode    string
	Discount     decimal.Decimal
	Cost         decimal.Decimal
	DeliveryTime ETA
	Dispatched   bool
}

func NewPackage(id string, weight, distance int, offerCode string) *Package {
	return &Package{
		ID:        strings.TrimSpace(id),
		Weight:    weight,
		Distance:  distance,
		OfferCode: strings.TrimSpace(offerCode),
	}
}

// Validate checks the immutable fields of the package.
func (p *Package) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: package is nil", ErrInvalidPackage)
	}
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: id must be non-empty", ErrInvalidPackage)
	}
	if p.Weight < 0 {
		return fmt.Errorf("%w: package %s weight must be >= 0 (weight=%d)", ErrInvalidPackage, p.ID, p.Weight)
	}
	if p.Distance < 0 {
		return fmt.Errorf("%w: package %s distance must be >= 0 (distance=%d)", ErrInvalidPackage, p.ID, p.Distance)
	}
	return nil
}

// Copy returns an independent copy of the package.
func (p *Package) Copy() *Package {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
