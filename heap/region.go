package heap

import "fmt"

// DefaultCap is the default simulated address-space size (20MB).
const DefaultCap = 20 << 20

// Region is a flat, growable heap area with a monotonically increasing
// break pointer. It is the only source of memory for the allocator.
//
// Region is not safe for concurrent use.
type Region struct {
	data    []byte
	brk     int
	release func() error
}

// New reserves a region of max bytes. The break starts at zero; no byte
// is in use until Sbrk is called.
func New(max int) (*Region, error) {
	if max <= 0 {
		return nil, fmt.Errorf("heap: invalid region capacity %d", max)
	}
	data, release, err := reserve(max)
	if err != nil {
		return nil, fmt.Errorf("heap: reserve %d bytes: %w", max, err)
	}
	return &Region{data: data, release: release}, nil
}

// Sbrk extends the in-use prefix of the region by incr bytes and returns
// the offset of the start of the new space (the old break).
//
// It fails with ErrBadGrow for negative incr and ErrExhausted when the
// extension would pass the reserved capacity. On failure the break is
// unchanged.
func (r *Region) Sbrk(incr int) (int, error) {
	if incr < 0 {
		return 0, ErrBadGrow
	}
	if r.brk+incr > len(r.data) {
		return 0, fmt.Errorf("%w: brk=%d incr=%d cap=%d", ErrExhausted, r.brk, incr, len(r.data))
	}
	old := r.brk
	r.brk += incr
	return old, nil
}

// Bytes returns the full reserved slice. The slice identity is stable
// across Sbrk calls; only offsets below Size are meaningful heap bytes.
func (r *Region) Bytes() []byte {
	return r.data
}

// Size returns the current break: the number of bytes in use.
func (r *Region) Size() int {
	return r.brk
}

// Cap returns the reserved capacity (the address-space ceiling).
func (r *Region) Cap() int {
	return len(r.data)
}

// Reset rewinds the break to zero, making the region an empty heap
// again. Contents above the break are left as-is.
func (r *Region) Reset() {
	r.brk = 0
}

// Close releases the reservation. The region must not be used after
// Close. Calling Close twice is a no-op.
func (r *Region) Close() error {
	if r.release == nil {
		return nil
	}
	release := r.release
	r.release = nil
	r.data = nil
	r.brk = 0
	return release()
}
