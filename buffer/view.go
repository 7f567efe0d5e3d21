// File: buffer/view.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Zero-copy views. A view is a position/limit window over the region's
// bytes, sharing storage with the buffer. The internal view is cached and
// its window reset on every use; independent views come from Slice and
// Duplicate and carry their own window state.

package buffer

import (
	"fmt"

	"github.com/momentics/rawbuf/api"
	"github.com/momentics/rawbuf/internal/raw"
)

// View is a position/limit-scoped window over shared region bytes.
// Mutating the window never copies content.
type View struct {
	data  []byte
	pos   int
	limit int
}

func newView(data []byte) *View {
	return &View{data: data, limit: len(data)}
}

// Len returns the full extent of the underlying span.
func (v *View) Len() int { return len(v.data) }

// Pos returns the window start.
func (v *View) Pos() int { return v.pos }

// Limit returns the window end.
func (v *View) Limit() int { return v.limit }

// Remaining returns the window length.
func (v *View) Remaining() int { return v.limit - v.pos }

// Window returns the bytes between position and limit, shared with the
// buffer's region.
func (v *View) Window() []byte { return v.data[v.pos:v.limit] }

// SetWindow repositions the view.
func (v *View) SetWindow(pos, limit int) error {
	if pos < 0 || pos > limit || limit > len(v.data) {
		return fmt.Errorf("window [%d, %d) over %d bytes: %w",
			pos, limit, len(v.data), api.ErrInvalidArgument)
	}
	v.pos = pos
	v.limit = limit
	return nil
}

// Advance moves the position forward after a partial consume.
func (v *View) Advance(n int) { v.pos += n }

// Duplicate returns an independent view over the same bytes with its own
// window state.
func (v *View) Duplicate() *View {
	d := *v
	return &d
}

// internalView returns the cached view scoped to [index, index+length).
// The window is reconfigured on every call; callers must not keep it
// across unrelated operations. Bounds are the caller's responsibility.
func (b *Buffer) internalView(index, length int) *View {
	if b.view == nil {
		b.view = newView(b.regionBytes())
	}
	b.view.pos = index
	b.view.limit = index + length
	return b.view
}

// InternalView exposes the cached view scoped to [index, index+length).
// The returned view is invalidated by any later buffer operation that
// reconfigures it; use Slice for a persistent window.
func (b *Buffer) InternalView(index, length int) (*View, error) {
	if err := b.checkIndex(index, length); err != nil {
		return nil, err
	}
	return b.internalView(index, length), nil
}

// Slice returns an independent zero-copy view over [index, index+length),
// suitable for streaming to a sink without an intermediate copy. The slice
// shares storage with this buffer until the next resize.
func (b *Buffer) Slice(index, length int) (*View, error) {
	if err := b.checkIndex(index, length); err != nil {
		return nil, err
	}
	return newView(b.regionBytes()[index : index+length]), nil
}

// GetBytesToView copies from index into dst, filling at most dst.Remaining()
// bytes without running past the capacity. dst's position advances by the
// amount copied.
func (b *Buffer) GetBytesToView(index int, dst *View) error {
	if err := b.checkIndex(index, 0); err != nil {
		return err
	}
	if dst == nil {
		return fmt.Errorf("dst is nil: %w", api.ErrInvalidArgument)
	}
	n := b.capacity - index
	if r := dst.Remaining(); r < n {
		n = r
	}
	raw.CopyToSlice(b.addr(index), dst.data[dst.pos:dst.pos+n])
	dst.Advance(n)
	return nil
}

// SetBytesFromView copies dst.Remaining() bytes from src into index,
// advancing src's position. When src is this buffer's own cached view the
// source window is duplicated first, so a self-transfer never reads bytes
// it has already overwritten.
func (b *Buffer) SetBytesFromView(index int, src *View) error {
	if err := b.guard(); err != nil {
		return err
	}
	if src == nil {
		return fmt.Errorf("src is nil: %w", api.ErrInvalidArgument)
	}
	n := src.Remaining()
	if err := b.checkIndex(index, n); err != nil {
		return err
	}
	if src == b.view {
		src = src.Duplicate()
	}
	raw.CopyFromSlice(b.addr(index), src.Window())
	src.Advance(n)
	return nil
}
