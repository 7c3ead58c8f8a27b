package alloc

import "errors"

var (
	// ErrNoSpace indicates that no free block was large enough and the
	// region could not be grown any further.
	ErrNoSpace = errors.New("alloc: heap exhausted")

	// ErrBadRef indicates an invalid or out-of-bounds block reference.
	ErrBadRef = errors.New("alloc: bad block reference")

	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("alloc: size must be non-negative")

	// ErrBadConfig indicates an invalid allocator configuration.
	ErrBadConfig = errors.New("alloc: invalid configuration")
)
