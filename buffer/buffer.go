// File: buffer/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer construction, capacity management and end-of-life. The region swap
// is the single mutation point: every resize allocates, copies, then swaps,
// so callers never observe partially-updated state.

package buffer

import (
	"fmt"

	"github.com/momentics/rawbuf/api"
	"github.com/momentics/rawbuf/cursor"
	"github.com/momentics/rawbuf/internal/raw"
)

// Buffer is a growable span of allocator-managed memory.
type Buffer struct {
	alloc api.Allocator
	cur   *cursor.Cursor

	handle      regionHandle // nil after deallocation
	base        uintptr
	capacity    int
	maxCapacity int

	// view is the lazily-created internal view. Its window is reset on
	// every use; nothing may rely on it persisting across operations.
	view *View
}

// New allocates a fresh buffer of initialCapacity bytes, growable up to
// maxCapacity.
func New(a api.Allocator, initialCapacity, maxCapacity int) (*Buffer, error) {
	if a == nil {
		return nil, fmt.Errorf("allocator is nil: %w", api.ErrInvalidArgument)
	}
	if initialCapacity < 0 || maxCapacity < 0 || initialCapacity > maxCapacity {
		return nil, fmt.Errorf("initialCapacity %d, maxCapacity %d: %w",
			initialCapacity, maxCapacity, api.ErrInvalidArgument)
	}

	b := &Buffer{alloc: a, cur: cursor.New(), maxCapacity: maxCapacity}
	b.cur.OnFinalRelease(b.Deallocate)

	h, err := b.allocateOwned(initialCapacity)
	if err != nil {
		return nil, err
	}
	b.install(h, initialCapacity)
	return b, nil
}

// Adopt wraps a caller-supplied region. The region must be raw-addressable
// and writable; its size becomes the capacity and its content the readable
// window. The caller keeps responsibility for releasing the region.
func Adopt(a api.Allocator, region api.Region, maxCapacity int) (*Buffer, error) {
	if a == nil || region == nil {
		return nil, fmt.Errorf("allocator or region is nil: %w", api.ErrInvalidArgument)
	}
	if region.Bytes() == nil && region.Size() != 0 {
		return nil, fmt.Errorf("region is not raw-addressable: %w", api.ErrInvalidArgument)
	}
	if region.ReadOnly() {
		return nil, fmt.Errorf("region is read-only: %w", api.ErrInvalidArgument)
	}
	if maxCapacity < 0 || region.Size() > maxCapacity {
		return nil, fmt.Errorf("region size %d > maxCapacity %d: %w",
			region.Size(), maxCapacity, api.ErrInvalidArgument)
	}

	b := &Buffer{alloc: a, cur: cursor.New(), maxCapacity: maxCapacity}
	b.cur.OnFinalRelease(b.Deallocate)
	b.install(&borrowedRegion{region: region}, region.Size())
	_ = b.cur.SetIndices(0, region.Size())
	return b, nil
}

// allocateOwned reserves a region and binds it to the release-once handle.
// Size-classed allocators may hand back a larger region; the buffer uses
// only the requested prefix.
func (b *Buffer) allocateOwned(size int) (regionHandle, error) {
	r, err := b.alloc.Allocate(size)
	if err != nil {
		return nil, fmt.Errorf("allocate %d bytes: %w", size, err)
	}
	if r.Size() < size {
		b.alloc.Free(r)
		return nil, fmt.Errorf("allocator returned %d bytes for a %d byte request: %w",
			r.Size(), size, api.ErrOutOfMemory)
	}
	return &ownedRegion{region: r, alloc: b.alloc}, nil
}

// install swaps in a new region handle, recomputes the base address,
// drops the cached view, moves the cursor's index bound to the new
// capacity, and releases the previous handle. A borrowed previous handle
// releases nothing, which is exactly the adoption suppression rule.
func (b *Buffer) install(h regionHandle, capacity int) {
	old := b.handle
	b.handle = h
	b.base = raw.BaseAddress(h.Region().Bytes())
	b.capacity = capacity
	b.cur.SetLimit(capacity)
	b.view = nil
	if old != nil {
		old.Release()
	}
}

// Capacity returns the current usable length in bytes.
func (b *Buffer) Capacity() int { return b.capacity }

// MaxCapacity returns the growth bound fixed at construction.
func (b *Buffer) MaxCapacity() int { return b.maxCapacity }

// Allocator returns the allocator regions are drawn from.
func (b *Buffer) Allocator() api.Allocator { return b.alloc }

// Cursor returns the reader/writer cursor attached to this buffer.
func (b *Buffer) Cursor() *cursor.Cursor { return b.cur }

// Order returns the buffer's native byte order.
func (b *Buffer) Order() api.ByteOrder { return api.HostOrder() }

// Retain adds a reference.
func (b *Buffer) Retain() { b.cur.Retain() }

// Release drops a reference; the last one deallocates the buffer.
func (b *Buffer) Release() { b.cur.Release() }

// Resize changes the capacity, preserving logical content. Growth copies
// the whole old range; bytes past the old capacity are allocator-defined.
// Shrink keeps the readable window [readerIndex, writerIndex) clamped to
// the new capacity, or discards content entirely and pins both indices to
// the new capacity when the reader is already past it.
func (b *Buffer) Resize(newCapacity int) error {
	if err := b.guard(); err != nil {
		return err
	}
	if newCapacity < 0 || newCapacity > b.maxCapacity {
		return fmt.Errorf("newCapacity %d (maxCapacity %d): %w",
			newCapacity, b.maxCapacity, api.ErrInvalidArgument)
	}

	oldCapacity := b.capacity
	switch {
	case newCapacity > oldCapacity:
		h, err := b.allocateOwned(newCapacity)
		if err != nil {
			return err
		}
		dst := raw.BaseAddress(h.Region().Bytes())
		raw.Copy(dst, b.base, oldCapacity)
		b.install(h, newCapacity)

	case newCapacity < oldCapacity:
		h, err := b.allocateOwned(newCapacity)
		if err != nil {
			return err
		}
		reader := b.cur.ReaderIndex()
		writer := b.cur.WriterIndex()
		if reader < newCapacity {
			if writer > newCapacity {
				writer = newCapacity
				_ = b.cur.SetWriterIndex(writer)
			}
			dst := raw.BaseAddress(h.Region().Bytes())
			raw.Copy(dst+uintptr(reader), b.base+uintptr(reader), writer-reader)
		} else {
			_ = b.cur.SetIndices(newCapacity, newCapacity)
		}
		b.install(h, newCapacity)
	}
	return nil
}

// Deallocate drops the region. Invoked by the cursor when the last
// reference is released; idempotent, so a second call observes no region
// and does nothing. The handle is cleared before the release decision, and
// the owned handle itself frees at most once.
func (b *Buffer) Deallocate() {
	h := b.handle
	if h == nil {
		return
	}
	b.handle = nil
	b.base = 0
	b.view = nil
	h.Release()
}

// guard rejects raw access after deallocation.
func (b *Buffer) guard() error {
	if err := b.cur.Guard(); err != nil {
		return err
	}
	if b.handle == nil {
		return api.ErrNotAccessible
	}
	return nil
}

// checkIndex validates an absolute sub-range against the capacity.
func (b *Buffer) checkIndex(index, length int) error {
	if err := b.guard(); err != nil {
		return err
	}
	if index < 0 || length < 0 || index > b.capacity-length {
		return api.NewError(api.ErrCodeOutOfBounds,
			fmt.Sprintf("index: %d, length: %d (expected: range(0, %d))",
				index, length, b.capacity))
	}
	return nil
}

// addr computes the absolute address of index. Valid only after checkIndex.
func (b *Buffer) addr(index int) uintptr { return b.base + uintptr(index) }

// regionBytes returns the raw view trimmed to the capacity.
func (b *Buffer) regionBytes() []byte {
	return b.handle.Region().Bytes()[:b.capacity]
}

// HasRawAddress reports raw-address capability; always true for this engine.
func (b *Buffer) HasRawAddress() bool { return true }

// RawAddress returns the absolute address of byte zero.
func (b *Buffer) RawAddress() (uintptr, error) {
	if err := b.guard(); err != nil {
		return 0, err
	}
	return b.base, nil
}

// HasBackingArray reports backing-array capability; always false, the
// storage is raw memory.
func (b *Buffer) HasBackingArray() bool { return false }

// BackingArray always fails for raw-memory buffers.
func (b *Buffer) BackingArray() ([]byte, error) {
	return nil, fmt.Errorf("raw-memory buffer has no backing array: %w", api.ErrUnsupported)
}

// ArrayOffset is meaningless without a backing array.
func (b *Buffer) ArrayOffset() int { return 0 }

var (
	_ api.Endpoint    = (*Buffer)(nil)
	_ api.RawMemory   = (*Buffer)(nil)
	_ api.ArrayBacked = (*Buffer)(nil)
)
