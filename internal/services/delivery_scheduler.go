package services

import (
	"cmp"
	"context"
	"delivery-estimate-service/internal/domain"
	"delivery-estimate-service/internal/platform/obs"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// ErrStalled is returned when a round selects nothing while eligible
// packages are still waiting.
var ErrStalled = errors.New("delivery scheduling stalled")

// StalledError reports the state of the run when no progress was possible.
type StalledError struct {
	Round     int
	Remaining []string
	MaxLoad   int
}

func (e *StalledError) Error() string {
	return fmt.Sprintf(
		"%v: round %d selected no packages, %d remaining under max load %d",
		ErrStalled, e.Round, len(e.Remaining), e.MaxLoad,
	)
}

func (e *StalledError) Unwrap() error { return ErrStalled }

// ErrScheduleOverflow is returned when a delivery or return time no longer
// fits in an ETA.
var ErrScheduleOverflow = errors.New("delivery schedule overflows time range")

// OverflowError reports the round whose times could not be represented.
// Packages of that round and later ones are left undispatched.
type OverflowError struct {
	Round     int
	Remaining []string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%v: round %d, %d packages not scheduled", ErrScheduleOverflow, e.Round, len(e.Remaining))
}

func (e *OverflowError) Unwrap() error { return ErrScheduleOverflow }

// ErrLoadTooLarge is returned when the combined weight the selector would
// have to consider exceeds MaxSelectorLoad.
var ErrLoadTooLarge = errors.New("load too large for batch selection")

// MaxSelectorLoad bounds the selection table. The table only needs to span
// the smaller of the max load and the total eligible weight.
const MaxSelectorLoad = 1 << 20

// selectFunc picks the batch of a round from the remaining candidates.
type selectFunc func(candidates []Candidate) Selection

// EstimateDeliveryTimes plans the delivery of packages with the given fleet
// and writes every eligible package's delivery time in place.
//
// Each round the largest batch that fits under the fleet's max load (the
// heavier one on ties) leaves with the soonest-free vehicle. Drops are made
// closest first and each arrives at departure plus its own travel time. The
// vehicle is free again at twice the arrival time of its last drop.
//
// Packages heavier than the max load are never dispatched; they keep a zero
// delivery time and are listed in the schedule as ineligible.
func EstimateDeliveryTimes(
	ctx context.Context,
	packages []*domain.Package,
	fleet domain.Fleet,
) (_ *domain.DeliverySchedule, err error) {
	defer obs.Time(ctx, "scheduler.EstimateDeliveryTimes")(&err)

	if err := fleet.Validate(); err != nil {
		return nil, fmt.Errorf("estimate delivery times: %w", err)
	}
	for _, p := range packages {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("estimate delivery times: %w", err)
		}
	}

	var pending []Candidate
	for i, p := range packages {
		if !p.Dispatched && fleet.Carries(p.Weight) {
			pending = append(pending, Candidate{Index: i, Weight: p.Weight})
		}
	}
	size := tableSize(pending, fleet.MaxLoad)
	if size > MaxSelectorLoad {
		return nil, fmt.Errorf("estimate delivery times: %w: %d kg to select from, limit %d", ErrLoadTooLarge, size, MaxSelectorLoad)
	}

	table := newBatchTable(size)
	return schedule(ctx, packages, fleet, table.fill)
}

func remainingIDs(packages []*domain.Package, remaining []Candidate) []string {
	ids := make([]string, 0, len(remaining))
	for _, c := range remaining {
		ids = append(ids, packages[c.Index].ID)
	}
	return ids
}

func schedule(
	ctx context.Context,
	packages []*domain.Package,
	fleet domain.Fleet,
	pick selectFunc,
) (*domain.DeliverySchedule, error) {
	logger := zerolog.Ctx(ctx)

	out := &domain.DeliverySchedule{
		Trips:      []domain.Trip{},
		Ineligible: []string{},
	}

	// Eligibility is settled once: the max load never changes during a run.
	remaining := make([]Candidate, 0, len(packages))
	for i, p := range packages {
		if p.Dispatched {
			continue
		}
		if !fleet.Carries(p.Weight) {
			out.Ineligible = append(out.Ineligible, p.ID)
			continue
		}
		remaining = append(remaining, Candidate{Index: i, Weight: p.Weight})
	}

	if len(out.Ineligible) > 0 {
		obs.ObserveIneligible(len(out.Ineligible))
		logger.Warn().
			Strs("package_ids", out.Ineligible).
			Int("max_load", fleet.MaxLoad).
			Msg("packages exceed max load and will not be dispatched")
	}

	pool := NewVehiclePool(fleet.Vehicles)

	for round := 1; len(remaining) > 0; round++ {
		best := pick(remaining)
		if best.Empty() {
			return nil, &StalledError{Round: round, Remaining: remainingIDs(packages, remaining), MaxLoad: fleet.MaxLoad}
		}

		// Deliver closest first; equal distances keep input order.
		members := slices.Clone(best.Members)
		slices.SortStableFunc(members, func(a, b int) int {
			if c := cmp.Compare(packages[a].Distance, packages[b].Distance); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})

		departAt := pool.Peek()
		trip := domain.Trip{
			Round:       round,
			DepartAt:    departAt,
			Stops:       make([]domain.TripStop, 0, len(members)),
			TotalWeight: best.Weight,
			CompletedAt: departAt,
		}

		// Times are computed before anything is written so an overflow
		// leaves the round undispatched.
		for _, idx := range members {
			p := packages[idx]
			arrive, ok := departAt.Arrive(p.Distance, fleet.MaxSpeed)
			if !ok {
				return nil, &OverflowError{Round: round, Remaining: remainingIDs(packages, remaining)}
			}
			trip.Stops = append(trip.Stops, domain.TripStop{
				PackageID: p.ID,
				Distance:  p.Distance,
				ArriveAt:  arrive,
			})
			trip.CompletedAt = arrive
		}

		returnAt, ok := trip.CompletedAt.Double()
		if !ok {
			return nil, &OverflowError{Round: round, Remaining: remainingIDs(packages, remaining)}
		}
		trip.ReturnAt = returnAt

		for i, idx := range members {
			packages[idx].DeliveryTime = trip.Stops[i].ArriveAt
			packages[idx].Dispatched = true
		}
		pool.Pop()
		pool.Push(trip.ReturnAt)

		out.Trips = append(out.Trips, trip)
		remaining = slices.DeleteFunc(remaining, func(c Candidate) bool {
			return packages[c.Index].Dispatched
		})

		obs.ObserveRound(len(members))
		logger.Debug().
			Int("round", round).
			Int("batch", len(members)).
			Int("weight", best.Weight).
			Stringer("depart_at", departAt).
			Stringer("return_at", trip.ReturnAt).
			Int("remaining", len(remaining)).
			Msg("round planned")
	}

	out.VehicleAvailability = pool.Snapshot()
	return out, nil
}
