package domain

import "fmt"

// Fleet describes the identical vehicles available for a delivery run.
type Fleet struct {
	Vehicles int
	MaxSpeed int
	MaxLoad  int
}

// Validate fails fast on a fleet that can never make progress.
func (f Fleet) Validate() error {
	if f.Vehicles < 1 {
		return fmt.Errorf("%w: vehicles must be >= 1 (vehicles=%d)", ErrInvalidFleet, f.Vehicles)
	}
	if f.MaxSpeed < 1 {
		return fmt.Errorf("%w: max speed must be >= 1 (max_speed=%d)", ErrInvalidFleet, f.MaxSpeed)
	}
	if f.MaxLoad < 0 {
		return fmt.Errorf("%w: max load must be >= 0 (max_load=%d)", ErrInvalidFleet, f.MaxLoad)
	}
	return nil
}

// Carries reports whether a package of the given weight can ever be loaded.
func (f Fleet) Carries(weight int) bool {
	return weight <= f.MaxLoad
}
