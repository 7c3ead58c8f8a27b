package alloc

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
)

// Config tunes the segregated-fit allocator.
type Config struct {
	// ChunkSize is the heap extension granularity in bytes. Extensions
	// are max(request, ChunkSize), so small allocations amortize the
	// growth cost. Must be a positive multiple of 8.
	ChunkSize int
}

// DefaultConfig is used when NewSeg receives a nil config.
var DefaultConfig = Config{
	ChunkSize: 4096,
}

func (c *Config) validate() error {
	if c.ChunkSize <= 0 || c.ChunkSize%format.Alignment != 0 {
		return fmt.Errorf("%w: chunk size %d", ErrBadConfig, c.ChunkSize)
	}
	return nil
}
