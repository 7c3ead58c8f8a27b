package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/heap"
)

// newTestRegion creates a region closed with the test.
func newTestRegion(t testing.TB, capBytes int) *heap.Region {
	t.Helper()
	r, err := heap.New(capBytes)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

// newTestAllocator creates a segregated-fit allocator over a fresh region.
func newTestAllocator(t testing.TB, capBytes int) *SegAllocator {
	t.Helper()
	r, err := heap.New(capBytes)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	a, err := NewSeg(r, nil)
	require.NoError(t, err)
	return a
}

// newTestBump creates a bump allocator over a fresh region.
func newTestBump(t testing.TB, capBytes int) *BumpAllocator {
	t.Helper()
	r, err := heap.New(capBytes)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	b, err := NewBump(r)
	require.NoError(t, err)
	return b
}

// assertHeap fails the test if the heap or free lists are inconsistent.
func assertHeap(t testing.TB, a *SegAllocator) {
	t.Helper()
	require.NoError(t, a.Check())
}

// fillPattern writes a deterministic byte pattern derived from seed.
func fillPattern(buf []byte, seed byte) {
	for i := range buf {
		buf[i] = seed + byte(i)
	}
}

// assertPattern verifies the first n bytes of buf against fillPattern(seed).
func assertPattern(t testing.TB, buf []byte, n int, seed byte) {
	t.Helper()
	for i := 0; i < n; i++ {
		if buf[i] != seed+byte(i) {
			t.Fatalf("payload byte %d: got %#x, want %#x", i, buf[i], seed+byte(i))
		}
	}
}

// mustAlloc allocates or fails the test.
func mustAlloc(t testing.TB, a Allocator, size int) (Ref, []byte) {
	t.Helper()
	ref, buf, err := a.Alloc(size)
	require.NoError(t, err)
	require.NotEqual(t, NilRef, ref)
	return ref, buf
}
