package alloc

// numClasses is the number of segregated free lists.
const numClasses = 10

// classLimits holds the inclusive upper size bound of classes 0..8.
// The last class is unbounded.
var classLimits = [numClasses - 1]int{31, 63, 127, 255, 511, 1023, 2047, 4095, 8191}

// classIndex maps a block size to its size-class index. Monotonic: a
// larger size never maps to a smaller index.
func classIndex(size int) int {
	for i, limit := range classLimits {
		if size <= limit {
			return i
		}
	}
	return numClasses - 1
}
