package alloc

import "github.com/joshuapare/heapkit/internal/format"

// Block navigation and metadata access.
//
// A block reference bp is the offset of the payload; the header sits one
// word below it and the footer one double-word before the end:
//
//	[hdr @ bp-4][payload @ bp ...][ftr @ bp+size-8]
//
// A free block reuses its first 16 payload bytes as two 8-byte link
// words: next at bp, prev at bp+8. The links are list positions, not
// ownership; they are meaningful only while the block is listed.
const (
	// minBlockSize is the smallest legal block: header (4) + two link
	// words (16) + footer (4). Sentinels are exempt.
	minBlockSize = 24

	// prologueSize is the total size of the prologue sentinel block.
	prologueSize = format.DWordSize
)

// adjustSize converts a requested payload size into a block size:
// header/footer overhead added, rounded up to alignment, clamped to the
// minimum block size.
func adjustSize(size int) int {
	if size <= 2*format.DWordSize {
		return minBlockSize
	}
	return format.Align8(size + format.DWordSize)
}

func (a *SegAllocator) word(off int) uint32 {
	return format.ReadU32(a.mem.Bytes(), off)
}

func (a *SegAllocator) putWord(off int, w uint32) {
	format.PutU32(a.mem.Bytes(), off, w)
}

// blockSize returns the total size stored in the block's header.
func (a *SegAllocator) blockSize(bp int) int {
	return format.Size(a.word(bp - format.WordSize))
}

// allocated reports the allocated flag stored in the block's header.
func (a *SegAllocator) allocated(bp int) bool {
	return format.Allocated(a.word(bp - format.WordSize))
}

// setBlock writes a block's header and footer in one step.
func (a *SegAllocator) setBlock(bp, size int, allocated bool) {
	w := format.Pack(size, allocated)
	a.putWord(bp-format.WordSize, w)
	a.putWord(bp+size-format.DWordSize, w)
}

// nextBlock returns the payload offset of the block physically after bp.
// Must not be called on the epilogue.
func (a *SegAllocator) nextBlock(bp int) int {
	return bp + a.blockSize(bp)
}

// prevBlock returns the payload offset of the block physically before
// bp, read from that block's footer. Must not be called on the prologue.
func (a *SegAllocator) prevBlock(bp int) int {
	return bp - format.Size(a.word(bp-format.DWordSize))
}

// prevAllocated reports the allocated flag of the physically previous
// block, read from its footer without navigating to it.
func (a *SegAllocator) prevAllocated(bp int) bool {
	return format.Allocated(a.word(bp - format.DWordSize))
}

// payloadSlice returns the payload view of an allocated block.
func (a *SegAllocator) payloadSlice(bp int) []byte {
	return a.mem.Bytes()[bp : bp+a.blockSize(bp)-format.DWordSize]
}

// Free-list link words, stored inside the free block's payload.

func (a *SegAllocator) nextFree(bp int) int {
	return int(format.ReadU64(a.mem.Bytes(), bp))
}

func (a *SegAllocator) setNextFree(bp, to int) {
	format.PutU64(a.mem.Bytes(), bp, uint64(to))
}

func (a *SegAllocator) prevFree(bp int) int {
	return int(format.ReadU64(a.mem.Bytes(), bp+format.DWordSize))
}

func (a *SegAllocator) setPrevFree(bp, to int) {
	format.PutU64(a.mem.Bytes(), bp+format.DWordSize, uint64(to))
}
