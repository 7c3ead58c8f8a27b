// Package alloc provides dynamic block allocation over a simulated heap region.
//
// # Overview
//
// This package implements a classic boundary-tag allocator with segregated
// free lists. Every block carries a one-word header and an identical
// footer packing (size | allocated-bit), so adjacent blocks can be merged
// in O(1) in either direction. Free blocks are threaded into one of ten
// size-class lists through link words stored in their own payload bytes,
// so the allocator's only side state is the array of list roots.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface, which supports:
//
//   - Alloc(size): Allocate a block large enough for size payload bytes
//   - Free(ref): Return a block for reuse
//   - Realloc(ref, size): Resize a block, in place when possible
//
// # Implementations
//
// SegAllocator: Production allocator with segregated free-lists
//
//   - 10 size classes (≤31 bytes up to unbounded)
//   - True best-fit placement across all eligible classes
//   - Immediate coalescing of adjacent free blocks
//   - Splits oversized fits when the remainder can stand alone
//
// BumpAllocator: Append-only variant
//
//   - O(1) bump-pointer allocation, no free lists
//   - Free only clears the allocated bit (dead space, never reused)
//   - Useful for single-pass workloads where reuse is not needed
//
// # Usage Example
//
//	r, err := heap.New(heap.DefaultCap)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	a, err := alloc.NewSeg(r, nil)
//	if err != nil {
//	    return err
//	}
//
//	ref, buf, err := a.Alloc(256)
//	if err != nil {
//	    return err
//	}
//
//	// Write payload to buf...
//
//	// Later, free the block
//	err = a.Free(ref)
//
// # Size Classes
//
// The allocator maintains 10 segregated free lists:
//
//	Class 0:    -   31 bytes
//	Class 1:  32 -   63 bytes
//	Class 2:  64 -  127 bytes
//	Class 3: 128 -  255 bytes
//	Class 4: 256 -  511 bytes
//	Class 5: 512 - 1023 bytes
//	Class 6:   1 -    2 KB
//	Class 7:   2 -    4 KB
//	Class 8:   4 -    8 KB
//	Class 9:   8+      KB (unbounded)
//
// # Heap Growth
//
// When no free block fits, the allocator extends the region by
// max(request, ChunkSize) bytes, coalesces the new span with a free tail
// block, and retries. Region exhaustion is the only allocation failure
// mode and surfaces as ErrNoSpace.
//
// # Block References
//
// Block references (Ref) are byte offsets of the block payload within the
// region. NilRef (0) is the null reference; the heap begins with a
// padding word, so no payload ever sits at offset 0.
//
// # Alignment Requirements
//
// All blocks are 8-byte aligned and at least 24 bytes total (header, two
// 8-byte link words, footer). Allocation sizes are rounded up
// automatically.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. There is exactly one logical
// caller; a concurrent port needs a lock around all list mutation and
// coalescing, since a merge touches up to three blocks' metadata.
//
// # Related Packages
//
//   - github.com/joshuapare/heapkit/heap: the simulated memory region
//   - github.com/joshuapare/heapkit/internal/format: word packing and layout constants
package alloc
