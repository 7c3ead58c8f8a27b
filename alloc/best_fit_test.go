package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carveFreeBlocks allocates blocks of the given payload sizes separated
// by minimum-size guard allocations, then frees the sized blocks. The
// guards keep the freed blocks from coalescing, leaving the heap with
// free blocks of exactly the adjusted sizes.
func carveFreeBlocks(t *testing.T, a *SegAllocator, payloads ...int) []Ref {
	t.Helper()
	refs := make([]Ref, len(payloads))
	for i, size := range payloads {
		refs[i], _ = mustAlloc(t, a, size)
		mustAlloc(t, a, 1) // guard
	}
	for _, ref := range refs {
		require.NoError(t, a.Free(ref))
	}
	assertHeap(t, a)
	return refs
}

func TestBestFit_PicksTightest(t *testing.T) {
	a := newTestAllocator(t, 1<<20)

	// Free blocks of 40, 64 and 200 bytes total. A request adjusting to
	// 56 must come from the 64-byte block - the tightest fit that holds
	// it - not the 200-byte one, and not the large heap tail.
	refs := carveFreeBlocks(t, a, 32, 56, 192) // block sizes 40, 64, 200

	ref, _, err := a.Alloc(48) // adjusted size 56
	require.NoError(t, err)
	assert.Equal(t, refs[1], ref, "should allocate from the 64-byte block")

	assertHeap(t, a)
}

func TestBestFit_ExactMatchWins(t *testing.T) {
	a := newTestAllocator(t, 1<<20)

	// Free blocks of 64 and 128. An exact 64-byte request takes the 64.
	refs := carveFreeBlocks(t, a, 56, 120)

	ref, _, err := a.Alloc(56)
	require.NoError(t, err)
	assert.Equal(t, refs[0], ref, "exact match should win")

	assertHeap(t, a)
}

func TestBestFit_CrossesClasses(t *testing.T) {
	a := newTestAllocator(t, 1<<20)

	// Only a free block from a larger class fits: 40-byte block (class
	// 1) is too small for an adjusted 112 request, so the 200-byte
	// block (class 3) must be found by scanning upward.
	refs := carveFreeBlocks(t, a, 32, 192)

	ref, _, err := a.Alloc(100) // adjusted size 112
	require.NoError(t, err)
	assert.Equal(t, refs[1], ref)

	assertHeap(t, a)
}

func TestBestFit_SmallerBlocksNeverReturned(t *testing.T) {
	a := newTestAllocator(t, 1<<20)

	carveFreeBlocks(t, a, 32, 32, 32)

	// Nothing carved fits; the request must come from the heap tail.
	ref, buf, err := a.Alloc(500)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(buf), 500)
	assert.NotEqual(t, NilRef, ref)

	assertHeap(t, a)
}

func TestClassIndexMonotonic(t *testing.T) {
	last := 0
	for size := minBlockSize; size <= 1<<16; size += 8 {
		idx := classIndex(size)
		assert.GreaterOrEqual(t, idx, last, "classIndex must not decrease (size %d)", size)
		assert.Less(t, idx, numClasses)
		last = idx
	}
}

func TestClassIndexBoundaries(t *testing.T) {
	cases := map[int]int{
		24:   0,
		31:   0,
		32:   1,
		63:   1,
		64:   2,
		4095: 7,
		4096: 8,
		8191: 8,
		8192: 9,
		1e6:  9,
	}
	for size, want := range cases {
		assert.Equal(t, want, classIndex(size), "classIndex(%d)", size)
	}
}
