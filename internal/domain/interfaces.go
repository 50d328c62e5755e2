package domain

// Sorter reorders a caller-owned sequence into non-decreasing order in place.
type Sorter interface {
	Sort(seq Sequence) SortStats
}

// Renderer presents a labelled sequence on an output stream.
type Renderer interface {
	Line(label string, seq Sequence) error
}
