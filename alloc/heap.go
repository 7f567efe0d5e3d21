// File: alloc/heap.go
// Author: momentics <momentics@gmail.com>
//
// Go-heap region allocator. The portable fallback when no OS-level backend
// is configured or available.

package alloc

import (
	"fmt"

	"github.com/momentics/rawbuf/api"
)

// Heap allocates regions from the Go heap. Regions stay pinned as long as
// a buffer references them; Free only updates accounting and lets the
// garbage collector do the rest.
type Heap struct {
	counters
}

// NewHeap returns a heap-backed allocator.
func NewHeap() *Heap {
	return &Heap{}
}

func (h *Heap) Allocate(size int) (api.Region, error) {
	if size < 0 {
		return nil, fmt.Errorf("allocate %d: %w", size, api.ErrInvalidArgument)
	}
	r := &sliceRegion{data: make([]byte, size)}
	h.allocated(size)
	return r, nil
}

func (h *Heap) Free(r api.Region) {
	if r == nil {
		return
	}
	h.freed(r.Size())
	r.Release()
}

func (h *Heap) Stats() api.AllocatorStats { return h.stats() }

var _ api.Allocator = (*Heap)(nil)
