//go:build !unix

package heap

// reserve allocates a plain byte slice on platforms without mmap support.
func reserve(size int) ([]byte, func() error, error) {
	return make([]byte, size), func() error { return nil }, nil
}
