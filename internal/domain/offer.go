package domain

import "fmt"

// Offer is a promotional discount applicable to packages within a
// distance and weight window. Lower bounds are inclusive, upper bounds
// exclusive.
type Offer struct {
	Code            string
	DiscountPercent int
	MinDistance     int
	MaxDistance     int
	MinWeight       int
	MaxWeight       int
}

// Applies reports whether the offer criteria hold for a package.
func (o Offer) Applies(weight, distance int) bool {
	if distance < o.MinDistance || distance >= o.MaxDistance {
		return false
	}
	return weight >= o.MinWeight && weight < o.MaxWeight
}

func (o Offer) String() string {
	return fmt.Sprintf(
		"%s: %d%% | distance %d-%d | weight %d-%d",
		o.Code, o.DiscountPercent, o.MinDistance, o.MaxDistance, o.MinWeight, o.MaxWeight,
	)
}
