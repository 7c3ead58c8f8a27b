package format

// Pack combines a block size and its allocated flag into one metadata
// word. Sizes are 8-byte multiples, so the flag lives in bit 0.
func Pack(size int, allocated bool) uint32 {
	w := uint32(size)
	if allocated {
		w |= allocBit
	}
	return w
}

// Size returns the block size stored in a packed word.
func Size(w uint32) int {
	return int(w & sizeMask)
}

// Allocated reports whether a packed word marks the block allocated.
func Allocated(w uint32) bool {
	return w&allocBit != 0
}
