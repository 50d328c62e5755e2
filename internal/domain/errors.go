package domain

import "errors"

// ErrMalformedInput is returned when user-supplied input is not a finite
// sequence of integers. It is the only error condition the tool defines:
// parsing fails before any sorting happens, never after a partial sort.
var ErrMalformedInput = errors.New("input is not a finite sequence of integers")
