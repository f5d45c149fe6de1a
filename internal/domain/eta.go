package domain

import (
	"fmt"
	"math"
)

// ETA is a point in time measured from the start of the delivery run,
// in hundredths of an hour.
type ETA int64

// MaxETA is the latest representable point in time.
const MaxETA = ETA(math.MaxInt64)

// Travel returns the one-way travel time for distance at speed, truncated
// to hundredths of an hour.
func Travel(distance, speed int) ETA {
	return ETA(int64(distance) * 100 / int64(speed))
}

// Arrive returns e plus the travel time for distance at speed. ok is false
// when the arrival does not fit in an ETA.
func (e ETA) Arrive(distance, speed int) (_ ETA, ok bool) {
	if e < 0 || distance < 0 || speed < 1 || int64(distance) > math.MaxInt64/100 {
		return 0, false
	}
	t := Travel(distance, speed)
	if t > MaxETA-e {
		return 0, false
	}
	return e + t, true
}

// Double returns 2*e. ok is false when the result does not fit in an ETA.
func (e ETA) Double() (_ ETA, ok bool) {
	if e < 0 || e > MaxETA/2 {
		return 0, false
	}
	return 2 * e, true
}

func (e ETA) Hours() float64 { return float64(e) / 100 }

func (e ETA) String() string { return fmt.Sprintf("%.2f", e.Hours()) }
