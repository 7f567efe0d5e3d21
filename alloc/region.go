// File: alloc/region.go
// Author: momentics <momentics@gmail.com>
//
// Slice-backed regions and region wrappers shared by the backends.

package alloc

import (
	"sync/atomic"

	"github.com/momentics/rawbuf/api"
)

// sliceRegion is a region over a plain Go slice. Release is a no-op; the
// garbage collector reclaims the storage once the region is unreachable.
type sliceRegion struct {
	data []byte
}

func (r *sliceRegion) Size() int      { return len(r.data) }
func (r *sliceRegion) Bytes() []byte  { return r.data }
func (r *sliceRegion) ReadOnly() bool { return false }
func (r *sliceRegion) Release()       {}

// WrapSlice exposes an existing slice as a region, for adopting
// caller-owned storage into a buffer.
func WrapSlice(data []byte) api.Region {
	return &sliceRegion{data: data}
}

// readOnlyRegion forbids writes through an underlying region.
type readOnlyRegion struct {
	api.Region
}

func (r *readOnlyRegion) ReadOnly() bool { return true }

// ReadOnly wraps a region so that adoption into a writable buffer is
// rejected.
func ReadOnly(r api.Region) api.Region {
	return &readOnlyRegion{Region: r}
}

// opaqueRegion has no raw view at all. Used by tests and by callers that
// hold a placeholder for storage that is not materialized in this process.
type opaqueRegion struct {
	size int
}

func (r *opaqueRegion) Size() int      { return r.size }
func (r *opaqueRegion) Bytes() []byte  { return nil }
func (r *opaqueRegion) ReadOnly() bool { return false }
func (r *opaqueRegion) Release()       {}

// Opaque returns a region of the given size with no raw-addressable view.
func Opaque(size int) api.Region {
	return &opaqueRegion{size: size}
}

// counters is the accounting core shared by all backends.
type counters struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	bytesInUse atomic.Int64
}

func (c *counters) allocated(size int) {
	c.totalAlloc.Add(1)
	c.bytesInUse.Add(int64(size))
}

func (c *counters) freed(size int) {
	c.totalFree.Add(1)
	c.bytesInUse.Add(-int64(size))
}

func (c *counters) stats() api.AllocatorStats {
	alloc := c.totalAlloc.Load()
	free := c.totalFree.Load()
	return api.AllocatorStats{
		TotalAlloc: alloc,
		TotalFree:  free,
		InUse:      alloc - free,
		BytesInUse: c.bytesInUse.Load(),
	}
}
