// File: api/transfer.go
// Author: momentics <momentics@gmail.com>
//
// Capability interfaces for the bulk-transfer dispatcher. The dispatcher
// probes a peer endpoint for the cheapest path in order: raw address,
// backing array, then the generic Endpoint double dispatch.

package api

// Endpoint is the generic transfer fallback implemented by every
// buffer-like peer. Indices are absolute, independent of any cursor.
type Endpoint interface {
	// Capacity returns the addressable length of the endpoint in bytes.
	Capacity() int

	// CopyOut copies length bytes from srcIndex in this endpoint into dst
	// starting at dstIndex.
	CopyOut(srcIndex int, dst Endpoint, dstIndex, length int) error

	// CopyIn copies length bytes from src starting at srcIndex into this
	// endpoint at dstIndex.
	CopyIn(dstIndex int, src Endpoint, srcIndex, length int) error
}

// RawMemory is implemented by endpoints whose storage is a single
// raw-addressable span. The dispatcher uses it for address-to-address moves.
type RawMemory interface {
	HasRawAddress() bool
	RawAddress() (uintptr, error)
}

// ArrayBacked is implemented by endpoints backed by a contiguous Go slice.
type ArrayBacked interface {
	HasBackingArray() bool
	BackingArray() ([]byte, error)
	ArrayOffset() int
}

// GatherSink consumes bytes directly out of a buffer window without an
// intermediate copy. It may consume fewer bytes than offered; the returned
// count reports how many were taken.
type GatherSink interface {
	WriteBuffer(p []byte) (int, error)
}

// ScatterSource fills a buffer window directly, returning how many bytes it
// supplied. Sources report end-of-input via io.EOF or a closed-connection
// error; the buffer engine translates both into a benign negative count.
type ScatterSource interface {
	ReadBuffer(p []byte) (int, error)
}
