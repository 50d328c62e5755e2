package domain

import (
	"strconv"
	"strings"
)

// Sequence is an ordered, mutable, finite list of integers indexed from 0.
// It is owned by the caller; sorters mutate it in place.
type Sequence []int

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// IsSorted reports whether the sequence is in non-decreasing order.
func (s Sequence) IsSorted() bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] > s[i+1] {
			return false
		}
	}
	return true
}

// String renders the elements separated by single spaces.
func (s Sequence) String() string {
	if len(s) == 0 {
		return ""
	}
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// SortStats reports what a sort did. It feeds debug logging only and has no
// bearing on the sorted result.
type SortStats struct {
	Passes int
	Swaps  int
}
