package alloc

// Free list management: one doubly linked list per size class, threaded
// through the free blocks' own payload bytes. Roots live in the
// allocator struct; 0 is the nil link.

// insertFree pushes a free block onto the head of its class list (LIFO).
// The class is assigned from the block's current size; a block whose size
// changes must be removed and reinserted.
func (a *SegAllocator) insertFree(bp int) {
	idx := classIndex(a.blockSize(bp))
	head := a.roots[idx]
	a.setNextFree(bp, head)
	a.setPrevFree(bp, 0)
	if head != 0 {
		a.setPrevFree(head, bp)
	}
	a.roots[idx] = bp
}

// removeFree unlinks a listed free block in O(1) using its stored links.
// The caller guarantees the block is currently listed.
func (a *SegAllocator) removeFree(bp int) {
	prev := a.prevFree(bp)
	next := a.nextFree(bp)
	if prev != 0 {
		a.setNextFree(prev, next)
	} else {
		a.roots[classIndex(a.blockSize(bp))] = next
	}
	if next != 0 {
		a.setPrevFree(next, prev)
	}
}

// findBestFit returns the free block with the least leftover space that
// still fits asize, or 0 if nothing fits.
//
// The scan starts at the request's own class and covers every larger
// class's entire list: a larger class may hold a tighter fit than the
// first candidate found, so there is no early exit short of an exact
// match.
func (a *SegAllocator) findBestFit(asize int) int {
	best := 0
	bestSlack := int(^uint(0) >> 1)

	for idx := classIndex(asize); idx < numClasses; idx++ {
		for bp := a.roots[idx]; bp != 0; bp = a.nextFree(bp) {
			a.stats.FitScans++
			slack := a.blockSize(bp) - asize
			if slack < 0 {
				continue
			}
			if slack == 0 {
				return bp
			}
			if slack < bestSlack {
				best = bp
				bestSlack = slack
			}
		}
	}
	return best
}
