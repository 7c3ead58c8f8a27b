package format

// Align8 returns n aligned up to the next 8-byte boundary.
// Used for block sizes and heap extension amounts.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
//	Align8(16) = 16
func Align8(n int) int {
	return (n + AlignmentMask) & ^AlignmentMask
}
