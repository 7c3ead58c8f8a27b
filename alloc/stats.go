package alloc

import (
	"fmt"
	"os"
)

// Runtime debug flag for allocation logging - controlled by the
// HEAPKIT_LOG_ALLOC environment variable.
var logAlloc = os.Getenv("HEAPKIT_LOG_ALLOC") != ""

// Stats holds allocator counters for testing and instrumentation.
type Stats struct {
	AllocCalls   int // Total Alloc() calls
	FreeCalls    int // Total Free() calls
	ReallocCalls int // Total Realloc() calls

	GrowCalls int   // Number of heap extensions
	GrowBytes int64 // Total bytes added via extension

	BytesAllocated int64 // Total block bytes handed out (including overhead)
	BytesFreed     int64 // Total block bytes returned

	SplitCount       int // Oversized fits split into block + remainder
	CoalesceForward  int // Merges absorbing the next block
	CoalesceBackward int // Merges absorbing the previous block
	CoalesceBoth     int // Merges absorbing both neighbors

	FitScans int // Free blocks inspected during best-fit searches

	ReallocInPlace int // Reallocations resolved without moving the payload
	ReallocMoved   int // Reallocations that relocated the payload
}

// debugf prints allocation debug messages to stderr.
func debugf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[ALLOC] "+format+"\n", args...)
}
