package alloc

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
)

// BumpAllocator is an append-only allocator: every allocation extends
// the region, nothing is ever reused. Free only clears the allocated
// bit - the block becomes dead space forever. This trades space for O(1)
// everything and zero bookkeeping, which suits single-pass workloads.
//
// It writes the same boundary-tag block layout as SegAllocator, so a
// bump-built heap remains walkable.
type BumpAllocator struct {
	mem Memory

	// heapStart is the prologue payload offset, as in SegAllocator.
	heapStart int
}

// NewBump initializes an append-only allocator over an empty region.
func NewBump(mem Memory) (*BumpAllocator, error) {
	base, err := mem.Sbrk(4 * format.WordSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSpace, err)
	}

	data := mem.Bytes()
	format.PutU32(data, base, 0) // alignment padding
	format.PutU32(data, base+format.WordSize, format.Pack(prologueSize, true))
	format.PutU32(data, base+2*format.WordSize, format.Pack(prologueSize, true))
	format.PutU32(data, base+3*format.WordSize, format.Pack(0, true)) // epilogue

	return &BumpAllocator{
		mem:       mem,
		heapStart: base + 2*format.WordSize,
	}, nil
}

// Alloc extends the region by exactly the adjusted block size and hands
// the new span out. The old epilogue word becomes the block's header.
func (b *BumpAllocator) Alloc(size int) (Ref, []byte, error) {
	if size == 0 {
		return NilRef, nil, nil
	}
	if size < 0 {
		return NilRef, nil, ErrBadSize
	}

	asize := adjustSize(size)
	bp, err := b.mem.Sbrk(asize)
	if err != nil {
		return NilRef, nil, fmt.Errorf("%w: %v", ErrNoSpace, err)
	}

	data := b.mem.Bytes()
	w := format.Pack(asize, true)
	format.PutU32(data, bp-format.WordSize, w)
	format.PutU32(data, bp+asize-format.DWordSize, w)
	format.PutU32(data, bp+asize-format.WordSize, format.Pack(0, true)) // new epilogue

	return Ref(bp), data[bp : bp+asize-format.DWordSize], nil
}

// Free clears the allocated bit and nothing else: no list, no
// coalescing, no reuse. Freeing NilRef or an already-free block is a
// no-op.
func (b *BumpAllocator) Free(ref Ref) error {
	if ref == NilRef {
		return nil
	}

	bp := int(ref)
	top := b.mem.Size()
	if bp%format.Alignment != 0 || bp < b.heapStart+prologueSize || bp >= top {
		return fmt.Errorf("%w: offset %d", ErrBadRef, bp)
	}

	data := b.mem.Bytes()
	hdr := format.ReadU32(data, bp-format.WordSize)
	size := format.Size(hdr)
	if size < minBlockSize || bp+size > top {
		return fmt.Errorf("%w: offset %d size %d", ErrBadRef, bp, size)
	}
	if !format.Allocated(hdr) {
		return nil
	}

	w := format.Pack(size, false)
	format.PutU32(data, bp-format.WordSize, w)
	format.PutU32(data, bp+size-format.DWordSize, w)
	return nil
}

// Realloc is always allocate-copy-free: an append-only heap has no
// in-place growth to offer.
func (b *BumpAllocator) Realloc(ref Ref, size int) (Ref, []byte, error) {
	if size < 0 {
		return NilRef, nil, ErrBadSize
	}
	if ref == NilRef {
		return b.Alloc(size)
	}
	if size == 0 {
		return NilRef, nil, b.Free(ref)
	}

	bp := int(ref)
	data := b.mem.Bytes()
	oldSize := format.Size(format.ReadU32(data, bp-format.WordSize))

	newRef, newPayload, err := b.Alloc(size)
	if err != nil {
		return NilRef, nil, err
	}
	data = b.mem.Bytes()
	n := min(oldSize-format.DWordSize, len(newPayload))
	copy(newPayload, data[bp:bp+n])

	if err := b.Free(ref); err != nil {
		return NilRef, nil, err
	}
	return newRef, newPayload, nil
}

var _ Allocator = (*BumpAllocator)(nil)
