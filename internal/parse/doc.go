// Package parse converts user-supplied text into a domain.Sequence.
//
// Malformed input is the tool's single error condition: any token that is
// not a base-10 integer fails the whole parse with domain.ErrMalformedInput
// before any sorting can happen.
package parse
