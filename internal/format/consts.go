package format

// Layout constants for the block metadata encoding.
//
// Every block is laid out as [header][payload][footer]. The header and
// footer are one word each and carry the same packed value, so the heap
// can be walked in both directions.
const (
	// WordSize is the size of a header or footer word in bytes.
	WordSize = 4

	// DWordSize is the combined header+footer overhead of a block, and
	// also the alignment unit for block sizes and payload offsets.
	DWordSize = 8

	// Alignment is the required alignment for block sizes and payloads.
	Alignment = 8

	// AlignmentMask is used by Align8 to round up to the next boundary.
	AlignmentMask = Alignment - 1

	// allocBit is the low bit of a packed word marking the block as
	// allocated. Block sizes are multiples of 8, so the low 3 bits of
	// the size are always zero and bit 0 is free for the flag.
	allocBit = 0x1

	// sizeMask strips the flag bits from a packed word.
	sizeMask = ^uint32(AlignmentMask)
)
