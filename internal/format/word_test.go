package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackRoundTrip(t *testing.T) {
	cases := []struct {
		size      int
		allocated bool
	}{
		{0, true},    // epilogue word
		{8, true},    // prologue word
		{24, false},  // minimum free block
		{24, true},   // minimum allocated block
		{4096, false},
		{1 << 20, true},
	}

	for _, tc := range cases {
		w := Pack(tc.size, tc.allocated)
		assert.Equal(t, tc.size, Size(w), "size survives packing")
		assert.Equal(t, tc.allocated, Allocated(w), "flag survives packing")
	}
}

func TestPackFlagDoesNotDisturbSize(t *testing.T) {
	free := Pack(128, false)
	used := Pack(128, true)
	assert.Equal(t, Size(free), Size(used))
	assert.False(t, Allocated(free))
	assert.True(t, Allocated(used))
}

func TestAlign8(t *testing.T) {
	cases := map[int]int{
		0:  0,
		1:  8,
		7:  8,
		8:  8,
		9:  16,
		16: 16,
		17: 24,
	}
	for in, want := range cases {
		assert.Equal(t, want, Align8(in), "Align8(%d)", in)
	}
}

func TestEncodingRoundTrip(t *testing.T) {
	buf := make([]byte, 16)

	PutU32(buf, 4, 0xDEADBEEF)
	assert.Equal(t, uint32(0xDEADBEEF), ReadU32(buf, 4))

	PutU64(buf, 8, 0x0102030405060708)
	assert.Equal(t, uint64(0x0102030405060708), ReadU64(buf, 8))

	// Little-endian: low byte first.
	PutU32(buf, 0, 0x00000001)
	assert.Equal(t, byte(1), buf[0])
}
