package heap

import "errors"

var (
	// ErrExhausted indicates that growing the region would exceed its
	// reserved capacity (the simulated address-space ceiling).
	ErrExhausted = errors.New("heap: address space exhausted")

	// ErrBadGrow indicates a negative growth request.
	ErrBadGrow = errors.New("heap: negative growth")
)
