package alloc

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
)

// Check walks the whole heap and the free lists and verifies their
// mutual consistency, returning a descriptive error for the first
// violation found. It is O(heap) and meant for tests and debugging, not
// the hot path.
//
// Verified invariants:
//   - prologue and epilogue sentinels intact
//   - blocks tile [base, break) exactly, each aligned, sized, and with
//     matching header/footer
//   - no two adjacent free blocks (coalescing is immediate)
//   - every free block is in the list of its size class, and every
//     listed block is a free block - a bijection
//   - list links are symmetric and in bounds
func (a *SegAllocator) Check() error {
	top := a.mem.Size()

	// Prologue.
	if a.blockSize(a.heapStart) != prologueSize || !a.allocated(a.heapStart) {
		return fmt.Errorf("alloc: corrupt prologue header at %d", a.heapStart-format.WordSize)
	}
	if a.word(a.heapStart-format.WordSize) != a.word(a.heapStart) {
		return fmt.Errorf("alloc: prologue header/footer mismatch")
	}

	freeCount := 0
	prevWasFree := false

	bp := a.nextBlock(a.heapStart)
	for {
		hdr := a.word(bp - format.WordSize)
		size := format.Size(hdr)

		if size == 0 {
			// Epilogue: must be allocated and sit exactly at the break.
			if !format.Allocated(hdr) {
				return fmt.Errorf("alloc: epilogue not marked allocated at %d", bp-format.WordSize)
			}
			if bp != top {
				return fmt.Errorf("alloc: epilogue at %d, break at %d: heap not fully tiled", bp, top)
			}
			break
		}

		if bp%format.Alignment != 0 {
			return fmt.Errorf("alloc: misaligned block at %d", bp)
		}
		if size < minBlockSize || size%format.Alignment != 0 {
			return fmt.Errorf("alloc: bad block size %d at %d", size, bp)
		}
		if bp+size > top {
			return fmt.Errorf("alloc: block at %d (size %d) runs past break %d", bp, size, top)
		}
		if ftr := a.word(bp + size - format.DWordSize); ftr != hdr {
			return fmt.Errorf("alloc: header/footer mismatch at %d: %#x != %#x", bp, hdr, ftr)
		}

		if !format.Allocated(hdr) {
			if prevWasFree {
				return fmt.Errorf("alloc: adjacent free blocks at %d", bp)
			}
			if !a.listed(bp) {
				return fmt.Errorf("alloc: free block at %d missing from class %d list",
					bp, classIndex(size))
			}
			freeCount++
			prevWasFree = true
		} else {
			prevWasFree = false
		}

		bp += size
	}

	// Free lists: every entry free, in the right class, links symmetric.
	listed := 0
	for idx, root := range a.roots {
		prev := 0
		for bp := root; bp != 0; bp = a.nextFree(bp) {
			listed++
			if listed > freeCount {
				return fmt.Errorf("alloc: class %d list longer than free block count %d (cycle?)",
					idx, freeCount)
			}
			if bp < a.heapStart+prologueSize || bp >= top {
				return fmt.Errorf("alloc: class %d list entry %d out of bounds", idx, bp)
			}
			if a.allocated(bp) {
				return fmt.Errorf("alloc: allocated block at %d on class %d list", bp, idx)
			}
			if got := classIndex(a.blockSize(bp)); got != idx {
				return fmt.Errorf("alloc: block at %d (size %d, class %d) listed under class %d",
					bp, a.blockSize(bp), got, idx)
			}
			if a.prevFree(bp) != prev {
				return fmt.Errorf("alloc: asymmetric links at %d in class %d", bp, idx)
			}
			prev = bp
		}
	}
	if listed != freeCount {
		return fmt.Errorf("alloc: %d blocks listed, %d free blocks on heap", listed, freeCount)
	}

	return nil
}

// listed reports whether bp appears in its own class's list.
func (a *SegAllocator) listed(bp int) bool {
	for cur := a.roots[classIndex(a.blockSize(bp))]; cur != 0; cur = a.nextFree(cur) {
		if cur == bp {
			return true
		}
	}
	return false
}
