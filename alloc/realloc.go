package alloc

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
)

// Realloc resizes a block, preserving payload contents up to the smaller
// of the old and new payload sizes.
//
// Shrinking always stays in place. Growing tries, in order: extending
// the region when the block sits at the heap end, absorbing a free next
// neighbor, absorbing a free previous neighbor (payload moves down), and
// absorbing both; only then does it fall back to allocate-copy-free.
func (a *SegAllocator) Realloc(ref Ref, size int) (Ref, []byte, error) {
	a.stats.ReallocCalls++
	if size < 0 {
		return NilRef, nil, ErrBadSize
	}
	if ref == NilRef {
		return a.Alloc(size)
	}
	if size == 0 {
		return NilRef, nil, a.Free(ref)
	}

	bp := int(ref)
	if err := a.checkRef(bp); err != nil {
		return NilRef, nil, err
	}
	if !a.allocated(bp) {
		return NilRef, nil, fmt.Errorf("%w: offset %d is free", ErrBadRef, bp)
	}

	oldSize := a.blockSize(bp)
	asize := adjustSize(size)

	if asize <= oldSize {
		a.shrink(bp, oldSize, asize)
		a.stats.ReallocInPlace++
		return ref, a.payloadSlice(bp), nil
	}
	return a.grow(ref, bp, oldSize, asize, size)
}

// shrink releases the tail of a block when the leftover can stand alone;
// otherwise the block keeps its full size (fragmentation accepted below
// the split threshold). No payload bytes move.
func (a *SegAllocator) shrink(bp, oldSize, asize int) {
	if oldSize-asize < minBlockSize {
		return
	}
	a.setBlock(bp, asize, true)
	rem := a.nextBlock(bp)
	a.setBlock(rem, oldSize-asize, false)
	a.insertFree(a.coalesce(rem))
	a.stats.SplitCount++
	a.stats.BytesFreed += int64(oldSize - asize)
}

// grow handles the expanding half of Realloc.
func (a *SegAllocator) grow(ref Ref, bp, oldSize, asize, size int) (Ref, []byte, error) {
	next := a.nextBlock(bp)

	// Block at the heap end: extend the region by exactly the deficit
	// and grow in place, no data movement.
	if a.blockSize(next) == 0 {
		deficit := asize - oldSize
		if _, err := a.mem.Sbrk(deficit); err == nil {
			a.stats.GrowCalls++
			a.stats.GrowBytes += int64(deficit)
			a.setBlock(bp, asize, true)
			a.putWord(bp+asize-format.WordSize, format.Pack(0, true))
			a.stats.BytesAllocated += int64(deficit)
			a.stats.ReallocInPlace++
			return ref, a.payloadSlice(bp), nil
		}
		// Extension failed; a free previous neighbor may still suffice.
	}

	nextFree := !a.allocated(next)
	nextSize := a.blockSize(next)
	prevFree := !a.prevAllocated(bp)

	// Absorb the free next neighbor: payload stays put.
	if nextFree && !prevFree && oldSize+nextSize >= asize {
		a.removeFree(next)
		a.markAndSplit(bp, oldSize+nextSize, asize)
		a.stats.BytesAllocated += int64(a.blockSize(bp) - oldSize)
		a.stats.ReallocInPlace++
		return ref, a.payloadSlice(bp), nil
	}

	if prevFree {
		prev := a.prevBlock(bp)
		prevSize := a.blockSize(prev)

		// Absorb the free previous neighbor: the payload moves down to
		// the merged block's base. Source and destination overlap, so
		// this is a move, not a copy.
		if !nextFree && prevSize+oldSize >= asize {
			a.removeFree(prev)
			a.movePayload(prev, bp, oldSize)
			a.markAndSplit(prev, prevSize+oldSize, asize)
			a.stats.BytesAllocated += int64(a.blockSize(prev) - oldSize)
			a.stats.ReallocMoved++
			return Ref(prev), a.payloadSlice(prev), nil
		}

		// Absorb both neighbors.
		if nextFree && prevSize+oldSize+nextSize >= asize {
			a.removeFree(prev)
			a.removeFree(next)
			a.movePayload(prev, bp, oldSize)
			a.markAndSplit(prev, prevSize+oldSize+nextSize, asize)
			a.stats.BytesAllocated += int64(a.blockSize(prev) - oldSize)
			a.stats.ReallocMoved++
			return Ref(prev), a.payloadSlice(prev), nil
		}
	}

	// Fallback: fresh block, copy, release the old one.
	newRef, newPayload, err := a.Alloc(size)
	if err != nil {
		return NilRef, nil, err
	}
	data := a.mem.Bytes()
	n := min(oldSize-format.DWordSize, len(newPayload))
	copy(newPayload, data[bp:bp+n])
	if err := a.Free(ref); err != nil {
		return NilRef, nil, err
	}
	a.stats.ReallocMoved++
	return newRef, newPayload, nil
}

// movePayload slides an old payload down to a new base. The absorbed
// predecessor has already been unlisted, so clobbering its link words is
// safe.
func (a *SegAllocator) movePayload(dst, src, srcBlockSize int) {
	data := a.mem.Bytes()
	copy(data[dst:], data[src:src+srcBlockSize-format.DWordSize])
}

// markAndSplit writes an allocated block of asize at bp out of total
// merged bytes, splitting the remainder back out as a free block when it
// can stand alone.
func (a *SegAllocator) markAndSplit(bp, total, asize int) {
	if total-asize >= minBlockSize {
		a.setBlock(bp, asize, true)
		rem := a.nextBlock(bp)
		a.setBlock(rem, total-asize, false)
		a.insertFree(rem)
		a.stats.SplitCount++
	} else {
		a.setBlock(bp, total, true)
	}
}
