package alloc

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
)

// SegAllocator is a segregated-fit allocator with boundary-tag coalescing.
//
// All allocator state outside the heap bytes themselves is this struct:
// the class list roots and the prologue offset. Multiple independent
// allocators can run over separate regions in one process.
//
// SegAllocator is not safe for concurrent use.
type SegAllocator struct {
	mem   Memory
	chunk int

	// roots holds the head payload offset of each size class's free
	// list; 0 means empty.
	roots [numClasses]int

	// heapStart is the prologue block's payload offset. The first real
	// block begins immediately after the prologue; backward traversal
	// stops at its always-allocated footer.
	heapStart int

	stats Stats
}

// NewSeg initializes an allocator over an empty region: alignment
// padding, prologue and epilogue sentinels, empty list roots, and one
// initial chunk of free space. Call it exactly once per region.
func NewSeg(mem Memory, config *Config) (*SegAllocator, error) {
	if config == nil {
		config = &DefaultConfig
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	base, err := mem.Sbrk(4 * format.WordSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSpace, err)
	}

	data := mem.Bytes()
	format.PutU32(data, base, 0) // alignment padding
	format.PutU32(data, base+format.WordSize, format.Pack(prologueSize, true))
	format.PutU32(data, base+2*format.WordSize, format.Pack(prologueSize, true))
	format.PutU32(data, base+3*format.WordSize, format.Pack(0, true)) // epilogue

	a := &SegAllocator{
		mem:       mem,
		chunk:     config.ChunkSize,
		heapStart: base + 2*format.WordSize,
	}

	bp, err := a.extendHeap(a.chunk)
	if err != nil {
		return nil, err
	}
	a.insertFree(bp)

	return a, nil
}

// extendHeap grows the region by at least bytes, writes the new span as
// one free block, moves the epilogue to the new end, and merges with a
// free block at the old heap tail. The returned block is NOT listed;
// insertion is the caller's single decision point.
func (a *SegAllocator) extendHeap(bytes int) (int, error) {
	size := format.Align8(bytes)
	old, err := a.mem.Sbrk(size)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoSpace, err)
	}
	a.stats.GrowCalls++
	a.stats.GrowBytes += int64(size)

	if logAlloc {
		debugf("grow: +%d bytes, heap now %d", size, a.mem.Size())
	}

	// The old epilogue header becomes the new block's header; a fresh
	// epilogue goes at the new end.
	bp := old
	a.setBlock(bp, size, false)
	a.putWord(bp+size-format.WordSize, format.Pack(0, true))

	return a.coalesce(bp), nil
}

// coalesce merges bp with its free physical neighbors, unlisting each
// absorbed block before its metadata is overwritten. The merged block is
// returned unlisted: free-driven and growth-driven callers each insert
// once, at their own site.
func (a *SegAllocator) coalesce(bp int) int {
	prevAlloc := a.prevAllocated(bp)
	nextAlloc := a.allocated(a.nextBlock(bp))
	size := a.blockSize(bp)

	switch {
	case prevAlloc && nextAlloc:
		return bp

	case prevAlloc && !nextAlloc:
		next := a.nextBlock(bp)
		a.removeFree(next)
		size += a.blockSize(next)
		a.setBlock(bp, size, false)
		a.stats.CoalesceForward++

	case !prevAlloc && nextAlloc:
		prev := a.prevBlock(bp)
		a.removeFree(prev)
		size += a.blockSize(prev)
		bp = prev
		a.setBlock(bp, size, false)
		a.stats.CoalesceBackward++

	default:
		prev := a.prevBlock(bp)
		next := a.nextBlock(bp)
		a.removeFree(prev)
		a.removeFree(next)
		size += a.blockSize(prev) + a.blockSize(next)
		bp = prev
		a.setBlock(bp, size, false)
		a.stats.CoalesceBoth++
	}
	return bp
}

// place carves an allocated block of asize bytes out of a listed free
// block: the block is consumed from its list, and the remainder is split
// off as a new free block when it can stand alone.
func (a *SegAllocator) place(bp, asize int) {
	csize := a.blockSize(bp)
	a.removeFree(bp)

	if csize-asize >= minBlockSize {
		a.setBlock(bp, asize, true)
		rem := a.nextBlock(bp)
		a.setBlock(rem, csize-asize, false)
		a.insertFree(rem)
		a.stats.SplitCount++
	} else {
		// Internal fragmentation below the split threshold.
		a.setBlock(bp, csize, true)
	}
}

// Alloc allocates a block with at least size payload bytes.
//
// A zero size returns (NilRef, nil, nil) - not an error. Region
// exhaustion is the only failure mode.
func (a *SegAllocator) Alloc(size int) (Ref, []byte, error) {
	a.stats.AllocCalls++
	if size == 0 {
		return NilRef, nil, nil
	}
	if size < 0 {
		return NilRef, nil, ErrBadSize
	}

	asize := adjustSize(size)
	bp := a.findBestFit(asize)
	if bp == 0 {
		grow := max(asize, a.chunk)
		nbp, err := a.extendHeap(grow)
		if err != nil {
			return NilRef, nil, err
		}
		a.insertFree(nbp)

		// The grown span is at least asize, so this cannot miss.
		bp = a.findBestFit(asize)
	}

	a.place(bp, asize)
	a.stats.BytesAllocated += int64(a.blockSize(bp))
	return Ref(bp), a.payloadSlice(bp), nil
}

// Free returns a block for reuse, merging it with any free neighbor.
//
// Freeing NilRef or an already-free block is a no-op: the allocated bit
// at the header detects a double free. A reference that was never
// returned by Alloc is a caller contract violation this metadata cannot
// detect; only gross range and alignment errors surface as ErrBadRef.
func (a *SegAllocator) Free(ref Ref) error {
	a.stats.FreeCalls++
	if ref == NilRef {
		return nil
	}

	bp := int(ref)
	if err := a.checkRef(bp); err != nil {
		return err
	}
	if !a.allocated(bp) {
		return nil
	}

	size := a.blockSize(bp)
	a.stats.BytesFreed += int64(size)

	a.setBlock(bp, size, false)
	a.insertFree(a.coalesce(bp))
	return nil
}

// checkRef rejects references that cannot be a live block's payload:
// misaligned, outside the heap, or with metadata that runs past the
// break.
func (a *SegAllocator) checkRef(bp int) error {
	top := a.mem.Size()
	if bp%format.Alignment != 0 || bp < a.heapStart+prologueSize || bp >= top {
		return fmt.Errorf("%w: offset %d", ErrBadRef, bp)
	}
	size := a.blockSize(bp)
	if size < minBlockSize || size%format.Alignment != 0 || bp+size > top {
		return fmt.Errorf("%w: offset %d size %d", ErrBadRef, bp, size)
	}
	return nil
}

// Stats returns a copy of the allocator's counters.
func (a *SegAllocator) Stats() Stats {
	return a.stats
}

var _ Allocator = (*SegAllocator)(nil)
