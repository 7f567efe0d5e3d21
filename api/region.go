// File: api/region.go
// Author: momentics <momentics@gmail.com>
//
// Region and Allocator abstractions. Regions may be heap slices, anonymous
// mmap pages, hugepages, or memory-mapped files; the buffer engine only sees
// a contiguous raw-addressable span.

package api

// Region is an opaque allocation token for one contiguous memory span.
type Region interface {
	// Size returns the usable length of the region in bytes.
	Size() int

	// Bytes returns the raw view of the region. A nil return means the
	// region is not raw-addressable and cannot back a buffer.
	Bytes() []byte

	// ReadOnly reports whether writes through the raw view are forbidden.
	ReadOnly() bool

	// Release destroys the region's backing storage. Callers must not
	// touch the raw view afterwards. Release is invoked by the owning
	// allocator, never directly by buffer users.
	Release()
}

// Allocator reserves and releases Regions outside the Go heap's control.
type Allocator interface {
	// Allocate reserves a region of exactly size bytes.
	// Returns ErrOutOfMemory (possibly wrapped) when no region can be produced.
	Allocate(size int) (Region, error)

	// Free returns a region to the allocator. The region must have been
	// produced by this allocator and must not be used afterwards.
	Free(r Region)

	// Stats exposes allocation accounting for observability.
	Stats() AllocatorStats
}

// AllocatorStats aggregates per-allocator accounting.
type AllocatorStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	BytesInUse int64
}
