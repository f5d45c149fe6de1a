package services

// Candidate is a package offered to the batch selector for one round.
// Index refers back to the caller's package slice.
type Candidate struct {
	Index  int
	Weight int
}

// Selection accumulates a subset of candidates: its member indices, how
// many there are and how much they weigh together. Selections are values;
// Combine never mutates its operands.
type Selection struct {
	Weight  int
	Count   int
	Members []int
}

func single(c Candidate) Selection {
	return Selection{Weight: c.Weight, Count: 1, Members: []int{c.Index}}
}

// Combine merges two disjoint selections.
func (s Selection) Combine(other Selection) Selection {
	members := make([]int, 0, len(s.Members)+len(other.Members))
	members = append(members, s.Members...)
	members = append(members, other.Members...)

	return Selection{
		Weight:  s.Weight + other.Weight,
		Count:   s.Count + other.Count,
		Members: members,
	}
}

// BetterThan orders selections by count, then by total weight.
func (s Selection) BetterThan(other Selection) bool {
	if s.Count != other.Count {
		return s.Count > other.Count
	}
	return s.Weight > other.Weight
}

// Empty reports whether the selection carries nothing.
func (s Selection) Empty() bool { return s.Count == 0 }

// batchTable holds the best selection for every load from 0 to capacity.
// Slot i is the best selection whose weight is at most i.
type batchTable struct {
	slots []Selection
}

func newBatchTable(capacity int) *batchTable {
	return &batchTable{slots: make([]Selection, capacity+1)}
}

func (t *batchTable) capacity() int { return len(t.slots) - 1 }

// reset empties every slot so no value survives from a previous round.
func (t *batchTable) reset() {
	for i := range t.slots {
		t.slots[i] = Selection{}
	}
}

// add offers one candidate to the table. Loads are visited from the top
// down so a candidate is never merged with a slot that already holds it.
func (t *batchTable) add(c Candidate) {
	item := single(c)
	for load := t.capacity(); load >= c.Weight; load-- {
		merged := t.slots[load-c.Weight].Combine(item)
		if merged.BetterThan(t.slots[load]) {
			t.slots[load] = merged
		}
	}
}

func (t *batchTable) best() Selection {
	return t.slots[t.capacity()]
}

// fill runs one full selection pass over candidates on a clean table.
// Candidates heavier than the table capacity are ignored.
func (t *batchTable) fill(candidates []Candidate) Selection {
	t.reset()
	for _, c := range candidates {
		if c.Weight < 0 || c.Weight > t.capacity() {
			continue
		}
		t.add(c)
	}
	return t.best()
}

// tableSize returns the capacity a table needs to find the best selection
// at capacity: the total weight of the candidates that fit, when that is
// below capacity. Beyond that total every subset fits and the top slot
// does not change.
func tableSize(candidates []Candidate, capacity int) int {
	total := 0
	for _, c := range candidates {
		if c.Weight < 0 || c.Weight > capacity {
			continue
		}
		if c.Weight >= capacity-total {
			return capacity
		}
		total += c.Weight
	}
	return total
}

// SelectBatch returns the subset of candidates with the most members whose
// combined weight fits in capacity, preferring the heavier subset on ties.
//
// It is a 0/1 knapsack over capacity where the value of a subset is its
// size and the weight breaks ties. Each candidate is considered once.
// When nothing fits the returned selection is empty.
func SelectBatch(candidates []Candidate, capacity int) Selection {
	if capacity < 0 {
		return Selection{}
	}
	return newBatchTable(tableSize(candidates, capacity)).fill(candidates)
}
