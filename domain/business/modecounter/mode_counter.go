package modecounter

import (
	"cmp"
	"slices"
)

// Frequency amount of times Value was observed
type Frequency[K cmp.Ordered] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// ModeCounter counts the occurrences of each observed value
type ModeCounter[K cmp.Ordered] struct {
	counts map[K]int
}

func NewModeCounter[K cmp.Ordered]() *ModeCounter[K] {
	return &ModeCounter[K]{
		counts: make(map[K]int),
	}
}

// NewModeCounterWithValues returns a ModeCounter that already observed values
func NewModeCounterWithValues[K cmp.Ordered](values []K) *ModeCounter[K] {
	mc := NewModeCounter[K]()
	for _, value := range values {
		mc.UpdateCounter(value)
	}
	return mc
}

func (mc *ModeCounter[K]) UpdateCounter(value K) {
	mc.counts[value] += 1
}

// Mode returns the most frequent value and its count. When several values share the
// highest count the smallest one is returned. ok is false if nothing was observed.
func (mc *ModeCounter[K]) Mode() (mode K, count int, ok bool) {
	for value, valueCount := range mc.counts {
		if !ok || valueCount > count || (valueCount == count && value < mode) {
			mode = value
			count = valueCount
			ok = true
		}
	}
	return mode, count, ok
}

// Frequencies returns every observed value sorted by count in descending order.
// Values with the same count are sorted in ascending order.
func (mc *ModeCounter[K]) Frequencies() []Frequency[K] {
	frequencies := make([]Frequency[K], 0, len(mc.counts))
	for value, count := range mc.counts {
		frequencies = append(frequencies, Frequency[K]{Value: value, Count: count})
	}

	slices.SortFunc(frequencies, func(a, b Frequency[K]) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return frequencies
}
