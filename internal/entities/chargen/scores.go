package chargen

import "sort"

// ScorePool is the ordered set of scores produced by one roll of six. It is the
// source of truth for which values may be assigned and how many times.
type ScorePool []int

// Count returns how many times value occurs in the pool
func (p ScorePool) Count(value int) int {
	n := 0
	for _, v := range p {
		if v == value {
			n++
		}
	}
	return n
}

// Sorted returns a descending copy of the pool
func (p ScorePool) Sorted() []int {
	out := make([]int, len(p))
	copy(out, p)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Assignment maps each ability slot to a score. Zero means unassigned.
type Assignment [AbilityCount]int

// Get returns the score in slot a, zero when empty
func (as Assignment) Get(a Ability) int {
	if !a.Valid() {
		return 0
	}
	return as[a]
}

// IsComplete reports whether every slot holds a score
func (as Assignment) IsComplete() bool {
	for _, v := range as {
		if v == 0 {
			return false
		}
	}
	return true
}

// Uses returns how many slots hold value
func (as Assignment) Uses(value int) int {
	n := 0
	for _, v := range as {
		if v != 0 && v == value {
			n++
		}
	}
	return n
}

// Missing returns the empty slots in sheet order
func (as Assignment) Missing() []Ability {
	var missing []Ability
	for _, a := range Abilities {
		if as[a] == 0 {
			missing = append(missing, a)
		}
	}
	return missing
}
