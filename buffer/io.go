// File: buffer/io.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stream and channel interop. Writers and readers that only understand
// discrete chunks are staged through a temporary slice; scatter/gather
// peers work directly against a view window with no staging copy. A source
// that closes mid-read yields a benign negative count, not an error.

package buffer

import (
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/momentics/rawbuf/api"
	"github.com/momentics/rawbuf/internal/raw"
)

// GetBytesToWriter writes length bytes starting at index to w, staging
// through a temporary slice so raw memory is never handed to the writer.
// A zero length performs no allocation and no write.
func (b *Buffer) GetBytesToWriter(index int, w io.Writer, length int) error {
	if err := b.checkIndex(index, length); err != nil {
		return err
	}
	if length == 0 {
		return nil
	}
	tmp := make([]byte, length)
	raw.CopyToSlice(b.addr(index), tmp)
	_, err := w.Write(tmp)
	return err
}

// GetBytesToSink offers [index, index+length) to sink directly from a view
// window, returning how many bytes the sink consumed.
func (b *Buffer) GetBytesToSink(index int, sink api.GatherSink, length int) (int, error) {
	if err := b.checkIndex(index, length); err != nil {
		return 0, err
	}
	if length == 0 {
		return 0, nil
	}
	v := newView(b.regionBytes())
	v.pos = index
	v.limit = index + length
	return sink.WriteBuffer(v.Window())
}

// ReadBytesToSink streams up to length readable bytes to sink through the
// cached view, advancing the reader index by the amount consumed.
func (b *Buffer) ReadBytesToSink(sink api.GatherSink, length int) (int, error) {
	if err := b.guard(); err != nil {
		return 0, err
	}
	if length < 0 || length > b.cur.Readable() {
		return 0, api.NewError(api.ErrCodeOutOfBounds,
			fmt.Sprintf("length: %d (readable: %d)", length, b.cur.Readable()))
	}
	if length == 0 {
		return 0, nil
	}
	v := b.internalView(b.cur.ReaderIndex(), length)
	n, err := sink.WriteBuffer(v.Window())
	if n > 0 {
		b.cur.Advance(n)
	}
	return n, err
}

// ReadBytesToView fills dst from the readable window through the cached
// view and advances the reader index by dst.Remaining().
func (b *Buffer) ReadBytesToView(dst *View) error {
	if err := b.guard(); err != nil {
		return err
	}
	if dst == nil {
		return fmt.Errorf("dst is nil: %w", api.ErrInvalidArgument)
	}
	length := dst.Remaining()
	if length > b.cur.Readable() {
		return api.NewError(api.ErrCodeOutOfBounds,
			fmt.Sprintf("length: %d (readable: %d)", length, b.cur.Readable()))
	}
	reader := b.cur.ReaderIndex()
	raw.CopyToSlice(b.addr(reader), dst.data[dst.pos:dst.pos+length])
	dst.Advance(length)
	b.cur.Advance(length)
	return nil
}

// SetBytesFromReader fills [index, index+length) from a single r.Read call,
// staging through a temporary slice and copying only the portion actually
// read. Returns the byte count; retrying a short read is the caller's job.
// End-of-input with no data yields -1 and no error.
func (b *Buffer) SetBytesFromReader(index int, r io.Reader, length int) (int, error) {
	if err := b.checkIndex(index, length); err != nil {
		return 0, err
	}
	if length == 0 {
		return 0, nil
	}
	tmp := make([]byte, length)
	n, err := r.Read(tmp)
	if n > 0 {
		raw.CopyFromSlice(b.addr(index), tmp[:n])
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			if n == 0 {
				return -1, nil
			}
			return n, nil
		}
		return n, err
	}
	return n, nil
}

// SetBytesFromSource reads directly into the cached view window scoped to
// [index, index+length), with no staging copy. The source may supply fewer
// bytes than requested; a source closed mid-read yields -1 and no error.
func (b *Buffer) SetBytesFromSource(index int, src api.ScatterSource, length int) (int, error) {
	if err := b.checkIndex(index, length); err != nil {
		return 0, err
	}
	if length == 0 {
		return 0, nil
	}
	v := b.internalView(index, length)
	n, err := src.ReadBuffer(v.Window())
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
			if n == 0 {
				return -1, nil
			}
			return n, nil
		}
		return n, err
	}
	return n, nil
}
