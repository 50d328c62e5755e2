// Package sorting implements the bubble sort over a domain.Sequence.
//
// Bubble works in repeated passes: each pass compares adjacent pairs up to
// the current unsorted boundary and swaps when the left element is strictly
// greater, so after pass k the k largest elements occupy their final
// positions at the tail. The boundary shrinks by one per pass and the outer
// loop runs at most n-1 passes. A pass that performs no swaps ends the sort
// early; the result is the same either way.
package sorting
