package sorting

import "bsort/internal/domain"

// Bubble sorts seq in place into non-decreasing order and reports how many
// passes and swaps the sort performed. Empty and single-element sequences
// are no-ops.
func Bubble(seq domain.Sequence) domain.SortStats {
	var stats domain.SortStats
	n := len(seq)
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		// The last `pass` elements are already in final position.
		for i := 0; i < n-1-pass; i++ {
			if seq[i] > seq[i+1] {
				seq[i], seq[i+1] = seq[i+1], seq[i]
				stats.Swaps++
				swapped = true
			}
		}
		stats.Passes++
		if !swapped {
			break
		}
	}
	return stats
}

// Sorter adapts Bubble to the domain.Sorter contract.
type Sorter struct{}

func (Sorter) Sort(seq domain.Sequence) domain.SortStats { return Bubble(seq) }
