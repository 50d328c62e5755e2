package parse

import (
	"fmt"
	"strconv"
	"strings"

	"bsort/internal/domain"
)

// Sequence parses each token as a base-10 integer. An empty token list
// yields an empty sequence, which is valid input.
func Sequence(tokens []string) (domain.Sequence, error) {
	seq := make(domain.Sequence, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", tok, domain.ErrMalformedInput)
		}
		seq = append(seq, v)
	}
	return seq, nil
}

// Fields splits free-form text on whitespace and parses the fields.
func Fields(text string) (domain.Sequence, error) {
	return Sequence(strings.Fields(text))
}
