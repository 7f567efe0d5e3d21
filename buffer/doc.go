// Package buffer
// Author: momentics <momentics@gmail.com>
//
// Growable byte-addressable buffer over allocator-managed memory regions.
// Width-specific accessors with selectable byte order, capability-probed
// bulk transfer, zero-copy views, and a resize path that preserves logical
// content. A buffer instance is not internally synchronized; callers must
// serialize access, the same single-writer discipline the pools expect.
// See buffer.go, accessors.go, transfer.go, view.go, io.go.
package buffer
