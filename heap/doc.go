// Package heap provides the simulated memory system the allocator runs on.
//
// A Region models a process address space for heap use: a fixed-capacity
// reservation with a break pointer that only moves up. Sbrk extends the
// in-use prefix and fails cleanly when the reservation is exhausted - the
// region never wraps, never moves, and never partially grows.
//
// On unix platforms the reservation is an anonymous private mapping, so
// even a large default capacity costs no physical memory until touched.
// Elsewhere a plain byte slice is used.
//
// The backing slice returned by Bytes is stable for the life of the
// region; callers may hold sub-slices across Sbrk calls.
package heap
