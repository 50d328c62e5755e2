package sorting_test

import (
	"testing"

	"bsort/internal/domain"
	"bsort/internal/sorting"
)

// multiset counts occurrences per value.
func multiset(t *testing.T, seq domain.Sequence) map[int]int {
	t.Helper()
	m := make(map[int]int, len(seq))
	for _, v := range seq {
		m[v]++
	}
	return m
}

func equalSeq(a, b domain.Sequence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBubble_ReferenceScenario(t *testing.T) {
	seq := domain.Sequence{64, 34, 25, 12, 22, 11, 90}
	want := domain.Sequence{11, 12, 22, 25, 34, 64, 90}

	sorting.Bubble(seq)

	if !equalSeq(seq, want) {
		t.Fatalf("got %v, want %v", seq, want)
	}
}

func TestBubble_SortsAndPreservesMultiset(t *testing.T) {
	inputs := []domain.Sequence{
		{3, 1, 2},
		{9, -4, 0, -4, 7, 7, 1},
		{5, 4, 3, 2, 1},
		{0, 0, 0},
		{-1, -2, -3, 10},
	}

	for _, in := range inputs {
		orig := in.Clone()
		before := multiset(t, in)

		sorting.Bubble(in)

		if !in.IsSorted() {
			t.Fatalf("not sorted: %v (input %v)", in, orig)
		}
		after := multiset(t, in)
		if len(before) != len(after) {
			t.Fatalf("multiset changed: %v -> %v", orig, in)
		}
		for v, n := range before {
			if after[v] != n {
				t.Fatalf("count of %d changed: %v -> %v", v, orig, in)
			}
		}
	}
}

func TestBubble_AlreadySorted_Idempotent(t *testing.T) {
	seq := domain.Sequence{1, 2, 2, 3, 9}
	want := seq.Clone()

	sorting.Bubble(seq)

	if !equalSeq(seq, want) {
		t.Fatalf("sorted input changed: got %v, want %v", seq, want)
	}
}

func TestBubble_EmptyAndSingleton(t *testing.T) {
	empty := domain.Sequence{}
	if stats := sorting.Bubble(empty); len(empty) != 0 || stats.Passes != 0 {
		t.Fatalf("empty sequence: got %v, stats %+v", empty, stats)
	}

	one := domain.Sequence{42}
	if stats := sorting.Bubble(one); one[0] != 42 || stats.Passes != 0 {
		t.Fatalf("singleton: got %v, stats %+v", one, stats)
	}
}

func TestBubble_Duplicates(t *testing.T) {
	seq := domain.Sequence{5, 3, 5, 1}
	want := domain.Sequence{1, 3, 5, 5}

	sorting.Bubble(seq)

	if !equalSeq(seq, want) {
		t.Fatalf("got %v, want %v", seq, want)
	}
}

func TestBubble_Stats(t *testing.T) {
	// A sorted input ends after one swap-free pass.
	sorted := domain.Sequence{1, 2, 3, 4}
	stats := sorting.Bubble(sorted)
	if stats.Passes != 1 || stats.Swaps != 0 {
		t.Fatalf("sorted input: stats %+v, want 1 pass and 0 swaps", stats)
	}

	// A reversed input needs the full n-1 passes.
	reversed := domain.Sequence{4, 3, 2, 1}
	stats = sorting.Bubble(reversed)
	if stats.Passes != 3 {
		t.Fatalf("reversed input: %d passes, want 3", stats.Passes)
	}
	if stats.Swaps != 6 {
		t.Fatalf("reversed input: %d swaps, want 6", stats.Swaps)
	}
}

func TestSorter_ImplementsDomainContract(t *testing.T) {
	var s domain.Sorter = sorting.Sorter{}

	seq := domain.Sequence{2, 1}
	s.Sort(seq)
	if !seq.IsSorted() {
		t.Fatalf("not sorted: %v", seq)
	}
}
