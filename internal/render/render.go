package render

import (
	"fmt"
	"io"

	"bsort/internal/domain"
)

// Fixed labels for the before/after lines.
const (
	BeforeLabel = "array before sorting:"
	AfterLabel  = "array after sorting:"
)

// Writer renders sequences to a stream, one labelled line each.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Line writes the label followed by the space-separated elements and a
// newline. An empty sequence produces the bare label.
func (p *Writer) Line(label string, seq domain.Sequence) error {
	line := label
	if s := seq.String(); s != "" {
		line += " " + s
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}
