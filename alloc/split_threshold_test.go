package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_LargeLeftover(t *testing.T) {
	a := newTestAllocator(t, 1<<20)

	// Carve a free 64-byte block behind a guard.
	ref, _ := mustAlloc(t, a, 56)
	mustAlloc(t, a, 1)
	require.NoError(t, a.Free(ref))

	// A 40-byte block leaves 24 bytes - exactly the split threshold, so
	// the remainder becomes its own free block.
	before := a.Stats()
	got, buf, err := a.Alloc(32) // adjusted size 40
	require.NoError(t, err)
	after := a.Stats()

	assert.Equal(t, ref, got, "reuses the carved block")
	assert.Equal(t, 32, len(buf), "split block payload is exactly the adjusted size")
	assert.Equal(t, before.SplitCount+1, after.SplitCount)
	assertHeap(t, a)

	// The 24-byte remainder is independently allocatable.
	rem, _, err := a.Alloc(1)
	require.NoError(t, err)
	assert.Equal(t, Ref(int(ref)+40), rem, "remainder sits right after the split block")
	assertHeap(t, a)
}

func TestSplit_SmallLeftoverAbsorbed(t *testing.T) {
	a := newTestAllocator(t, 1<<20)

	ref, _ := mustAlloc(t, a, 56) // block size 64
	mustAlloc(t, a, 1)
	require.NoError(t, a.Free(ref))

	// Adjusted size 56 leaves 8 bytes - below the 24-byte minimum, so
	// the whole 64-byte block is handed out.
	before := a.Stats()
	got, buf, err := a.Alloc(48)
	require.NoError(t, err)
	after := a.Stats()

	assert.Equal(t, ref, got)
	assert.Equal(t, 56, len(buf), "absorbed block keeps its full payload capacity")
	assert.Equal(t, before.SplitCount, after.SplitCount, "no split below the threshold")
	assertHeap(t, a)
}
