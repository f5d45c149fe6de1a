package services

import (
	"container/heap"
	"delivery-estimate-service/internal/domain"
	"slices"
)

// availabilityHeap is a min-heap of vehicle availability times.
type availabilityHeap []domain.ETA

func (h availabilityHeap) Len() int           { return len(h) }
func (h availabilityHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h availabilityHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *availabilityHeap) Push(x any) { *h = append(*h, x.(domain.ETA)) }

func (h *availabilityHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// VehiclePool tracks when each vehicle of the fleet is next free to
// depart. Vehicles carry no identity beyond that time.
type VehiclePool struct {
	h availabilityHeap
}

// NewVehiclePool returns a pool of n vehicles, all available at time 0.
func NewVehiclePool(n int) *VehiclePool {
	h := make(availabilityHeap, n)
	heap.Init(&h)
	return &VehiclePool{h: h}
}

func (p *VehiclePool) Len() int { return p.h.Len() }

// Peek returns the earliest availability without withdrawing the vehicle.
// The pool must not be empty.
func (p *VehiclePool) Peek() domain.ETA { return p.h[0] }

// Pop withdraws the soonest-available vehicle and returns its availability.
// The pool must not be empty.
func (p *VehiclePool) Pop() domain.ETA { return heap.Pop(&p.h).(domain.ETA) }

// Push returns a vehicle to the pool, free again at t.
func (p *VehiclePool) Push(t domain.ETA) { heap.Push(&p.h, t) }

// Snapshot returns every vehicle's availability in ascending order.
func (p *VehiclePool) Snapshot() []domain.ETA {
	out := slices.Clone([]domain.ETA(p.h))
	slices.Sort(out)
	return out
}
