package alloc

// Ref is a block reference: the byte offset of the block's payload within
// the heap region. NilRef is the null reference.
type Ref uint32

// NilRef is the zero Ref. The heap begins with an alignment padding word,
// so no payload can ever sit at offset 0.
const NilRef Ref = 0

// Memory is the growth primitive the allocator consumes. It is satisfied
// by *heap.Region.
//
// Bytes must return a slice whose identity is stable across Sbrk calls;
// the allocator hands out payload sub-slices that stay valid while their
// block is live.
type Memory interface {
	// Sbrk extends the heap by incr bytes and returns the offset of the
	// new space. It fails when the simulated address space is exhausted.
	Sbrk(incr int) (int, error)

	// Bytes returns the backing slice of the region.
	Bytes() []byte

	// Size returns the current break (bytes in use).
	Size() int
}

// Allocator is the contract shared by the segregated-fit and bump
// allocators.
type Allocator interface {
	// Alloc allocates a block with at least size payload bytes.
	// Returns the block reference, a slice over the payload, and any
	// error. A zero size returns (NilRef, nil, nil).
	Alloc(size int) (Ref, []byte, error)

	// Free returns a block for reuse. Freeing NilRef or an already-free
	// block is a no-op.
	Free(ref Ref) error

	// Realloc resizes a block, preserving payload contents up to the
	// smaller of the old and new sizes. Realloc(NilRef, n) behaves as
	// Alloc(n); Realloc(ref, 0) behaves as Free(ref).
	Realloc(ref Ref, size int) (Ref, []byte, error)
}
