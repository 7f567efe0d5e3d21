// File: buffer/handle.go
// Author: momentics <momentics@gmail.com>
//
// Region ownership as a type, not a flag. An owned handle releases its
// region through the allocator exactly once; a borrowed handle carries no
// release capability at all, so adopted caller-supplied regions can never
// be freed by the buffer.

package buffer

import (
	"sync/atomic"

	"github.com/momentics/rawbuf/api"
)

// regionHandle binds a region to its release discipline.
type regionHandle interface {
	Region() api.Region

	// Release gives the region back, if this handle owns it. Safe to call
	// more than once; only the first call on an owned handle frees.
	Release()
}

// ownedRegion frees through the allocator that produced the region.
type ownedRegion struct {
	region   api.Region
	alloc    api.Allocator
	released atomic.Bool
}

func (h *ownedRegion) Region() api.Region { return h.region }

func (h *ownedRegion) Release() {
	if !h.released.CompareAndSwap(false, true) {
		return
	}
	h.alloc.Free(h.region)
}

// borrowedRegion is caller-owned storage. The supplier keeps the single
// remaining lifecycle decision for the region.
type borrowedRegion struct {
	region api.Region
}

func (h *borrowedRegion) Region() api.Region { return h.region }
func (h *borrowedRegion) Release()           {}
