// File: buffer/transfer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bulk-transfer dispatch. The peer is probed for the cheapest path in
// priority order: raw address, backing array, then the generic endpoint
// double dispatch. Range validation happens up front on both sides; a
// failing range copies nothing. Zero-length transfers never touch memory.

package buffer

import (
	"fmt"

	"github.com/momentics/rawbuf/api"
	"github.com/momentics/rawbuf/internal/raw"
)

// GetBytes copies length bytes from index into dst starting at dstIndex.
func (b *Buffer) GetBytes(index int, dst api.Endpoint, dstIndex, length int) error {
	if err := b.checkIndex(index, length); err != nil {
		return err
	}
	if dst == nil {
		return fmt.Errorf("dst is nil: %w", api.ErrInvalidArgument)
	}
	if dstIndex < 0 || dstIndex > dst.Capacity()-length {
		return api.NewError(api.ErrCodeOutOfBounds,
			fmt.Sprintf("dstIndex: %d, length: %d (expected: range(0, %d))",
				dstIndex, length, dst.Capacity()))
	}
	if length == 0 {
		return nil
	}

	if rm, ok := dst.(api.RawMemory); ok && rm.HasRawAddress() {
		dstAddr, err := rm.RawAddress()
		if err != nil {
			return err
		}
		raw.Copy(dstAddr+uintptr(dstIndex), b.addr(index), length)
		return nil
	}
	if ab, ok := dst.(api.ArrayBacked); ok && ab.HasBackingArray() {
		arr, err := ab.BackingArray()
		if err != nil {
			return err
		}
		off := ab.ArrayOffset() + dstIndex
		raw.CopyToSlice(b.addr(index), arr[off:off+length])
		return nil
	}
	return dst.CopyIn(dstIndex, b, index, length)
}

// SetBytes copies length bytes from src starting at srcIndex into index.
func (b *Buffer) SetBytes(index int, src api.Endpoint, srcIndex, length int) error {
	if err := b.checkIndex(index, length); err != nil {
		return err
	}
	if src == nil {
		return fmt.Errorf("src is nil: %w", api.ErrInvalidArgument)
	}
	if srcIndex < 0 || srcIndex > src.Capacity()-length {
		return api.NewError(api.ErrCodeOutOfBounds,
			fmt.Sprintf("srcIndex: %d, length: %d (expected: range(0, %d))",
				srcIndex, length, src.Capacity()))
	}
	if length == 0 {
		return nil
	}

	if rm, ok := src.(api.RawMemory); ok && rm.HasRawAddress() {
		srcAddr, err := rm.RawAddress()
		if err != nil {
			return err
		}
		raw.Copy(b.addr(index), srcAddr+uintptr(srcIndex), length)
		return nil
	}
	if ab, ok := src.(api.ArrayBacked); ok && ab.HasBackingArray() {
		arr, err := ab.BackingArray()
		if err != nil {
			return err
		}
		off := ab.ArrayOffset() + srcIndex
		raw.CopyFromSlice(b.addr(index), arr[off:off+length])
		return nil
	}
	return src.CopyOut(srcIndex, b, index, length)
}

// GetBytesToSlice copies length bytes from index into dst at dstIndex.
// A zero length is a no-op even with a nil dst.
func (b *Buffer) GetBytesToSlice(index int, dst []byte, dstIndex, length int) error {
	if err := b.checkIndex(index, length); err != nil {
		return err
	}
	if length == 0 {
		return nil
	}
	if dstIndex < 0 || dstIndex > len(dst)-length {
		return api.NewError(api.ErrCodeOutOfBounds,
			fmt.Sprintf("dstIndex: %d, length: %d (expected: range(0, %d))",
				dstIndex, length, len(dst)))
	}
	raw.CopyToSlice(b.addr(index), dst[dstIndex:dstIndex+length])
	return nil
}

// SetBytesFromSlice copies length bytes from src at srcIndex into index.
// A zero length is a no-op even with a nil src.
func (b *Buffer) SetBytesFromSlice(index int, src []byte, srcIndex, length int) error {
	if err := b.checkIndex(index, length); err != nil {
		return err
	}
	if length == 0 {
		return nil
	}
	if srcIndex < 0 || srcIndex > len(src)-length {
		return api.NewError(api.ErrCodeOutOfBounds,
			fmt.Sprintf("srcIndex: %d, length: %d (expected: range(0, %d))",
				srcIndex, length, len(src)))
	}
	raw.CopyFromSlice(b.addr(index), src[srcIndex:srcIndex+length])
	return nil
}

// CopyOut implements api.Endpoint.
func (b *Buffer) CopyOut(srcIndex int, dst api.Endpoint, dstIndex, length int) error {
	return b.GetBytes(srcIndex, dst, dstIndex, length)
}

// CopyIn implements api.Endpoint.
func (b *Buffer) CopyIn(dstIndex int, src api.Endpoint, srcIndex, length int) error {
	return b.SetBytes(dstIndex, src, srcIndex, length)
}

// Copy returns an independent deep copy of [index, index+length) as a new
// buffer drawn from the same allocator. The copy's max capacity defaults
// to length and its readable window covers the whole content.
func (b *Buffer) Copy(index, length int) (*Buffer, error) {
	if err := b.checkIndex(index, length); err != nil {
		return nil, err
	}
	nb, err := New(b.alloc, length, length)
	if err != nil {
		return nil, err
	}
	if length != 0 {
		raw.Copy(nb.base, b.addr(index), length)
		_ = nb.cur.SetIndices(0, length)
	}
	return nb, nil
}
