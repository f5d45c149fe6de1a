package domain

// Represents a single drop in a delivery trip.
// Stops appear in delivery order (closest first).
type TripStop struct {
	PackageID string
	Distance  int
	ArriveAt  ETA
}

// Represents one round of the scheduler: a single vehicle departing with
// the selected batch and coming back once the farthest drop is done.
type Trip struct {
	Round       int
	DepartAt    ETA
	Stops       []TripStop
	TotalWeight int
	CompletedAt ETA
	ReturnAt    ETA
}

// DeliverySchedule is the output of a delivery run. It is planning data
// only; package delivery times are written on the packages themselves.
type DeliverySchedule struct {
	Trips []Trip
	// IDs of packages heavier than the fleet's max load. They are never
	// dispatched and keep a zero delivery time.
	Ineligible []string
	// Next availability of every vehicle once the run is over, ascending.
	VehicleAvailability []ETA
}

// Dispatched returns the number of packages delivered across all trips.
func (s *DeliverySchedule) Dispatched() int {
	n := 0
	for _, t := range s.Trips {
		n += len(t.Stops)
	}
	return n
}
