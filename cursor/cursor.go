// File: cursor/cursor.go
// Package cursor tracks reader/writer positions and the reference count of
// a single buffer instance.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The cursor is injected into the buffer engine as explicit composition:
// the engine consults indices during shrink and calls Guard before every
// raw operation, while the cursor owns end-of-life. Index mutation is not
// synchronized; a buffer instance must be externally serialized.

package cursor

import (
	"sync/atomic"

	"github.com/momentics/rawbuf/api"
)

// Cursor holds the reader/writer window and the reference count for one
// buffer. Invariant: 0 <= reader <= writer <= limit, where limit is the
// capacity of the buffer the cursor is attached to. The buffer engine
// maintains the limit through SetLimit on every region swap; the cursor
// rejects any index mutation that would breach it.
type Cursor struct {
	reader int
	writer int
	limit  int

	refs   atomic.Int32
	closed atomic.Bool

	// onFinal fires at most once, when the last reference is released.
	onFinal func()
}

// New returns a cursor with one outstanding reference, a zero limit and no
// finalizer. The owning buffer raises the limit via SetLimit once it has a
// region.
func New() *Cursor {
	c := &Cursor{}
	c.refs.Store(1)
	return c
}

// Limit returns the upper bound both indices are held under.
func (c *Cursor) Limit() int { return c.limit }

// SetLimit moves the upper bound, as the buffer engine does on every region
// swap. Indices already past the new bound are clamped down to it, the way a
// shrink discards content that no longer fits.
func (c *Cursor) SetLimit(n int) {
	c.limit = n
	if c.writer > n {
		c.writer = n
	}
	if c.reader > n {
		c.reader = n
	}
}

// OnFinalRelease registers the hook invoked when the reference count drops
// to zero. The buffer engine registers its deallocation step here.
func (c *Cursor) OnFinalRelease(fn func()) { c.onFinal = fn }

// ReaderIndex returns the current read position.
func (c *Cursor) ReaderIndex() int { return c.reader }

// WriterIndex returns the current write position.
func (c *Cursor) WriterIndex() int { return c.writer }

// SetWriterIndex moves the write position. Returns ErrInvalidArgument when
// the reader/writer ordering would be violated and ErrOutOfBounds when the
// position is past the limit.
func (c *Cursor) SetWriterIndex(w int) error {
	if w < c.reader {
		return api.ErrInvalidArgument
	}
	if w > c.limit {
		return api.ErrOutOfBounds
	}
	c.writer = w
	return nil
}

// SetIndices moves both positions at once, as the shrink path requires.
func (c *Cursor) SetIndices(r, w int) error {
	if r < 0 || r > w {
		return api.ErrInvalidArgument
	}
	if w > c.limit {
		return api.ErrOutOfBounds
	}
	c.reader = r
	c.writer = w
	return nil
}

// Advance moves the reader forward by n after a cursor-relative read,
// clamped to the readable window.
func (c *Cursor) Advance(n int) {
	c.reader += n
	if c.reader > c.writer {
		c.reader = c.writer
	}
	if c.reader < 0 {
		c.reader = 0
	}
}

// Readable returns the number of bytes between reader and writer.
func (c *Cursor) Readable() int { return c.writer - c.reader }

// Guard reports whether raw access is still permitted. After the final
// release it fails with ErrNotAccessible, keeping accessors away from
// freed memory.
func (c *Cursor) Guard() error {
	if c.closed.Load() {
		return api.ErrNotAccessible
	}
	return nil
}

// Retain adds a reference.
func (c *Cursor) Retain() {
	c.refs.Add(1)
}

// Release drops a reference. When the count reaches zero the cursor closes,
// fires the finalizer exactly once, and reports true. Further Release calls
// are no-ops.
func (c *Cursor) Release() bool {
	for {
		n := c.refs.Load()
		if n <= 0 {
			return false
		}
		if !c.refs.CompareAndSwap(n, n-1) {
			continue
		}
		if n != 1 {
			return false
		}
		c.closed.Store(true)
		if c.onFinal != nil {
			c.onFinal()
		}
		return true
	}
}

// Refs returns the current reference count. Intended for tests and debug.
func (c *Cursor) Refs() int { return int(c.refs.Load()) }
