package buffer_test

import (
	"errors"
	"testing"

	"github.com/momentics/rawbuf/api"
)

// arrayEndpoint is a slice-backed transfer peer, exercising the
// backing-array dispatch path.
type arrayEndpoint struct {
	data []byte
}

func (e *arrayEndpoint) Capacity() int { return len(e.data) }

func (e *arrayEndpoint) HasBackingArray() bool         { return true }
func (e *arrayEndpoint) BackingArray() ([]byte, error) { return e.data, nil }
func (e *arrayEndpoint) ArrayOffset() int              { return 0 }

func (e *arrayEndpoint) CopyOut(srcIndex int, dst api.Endpoint, dstIndex, length int) error {
	return dst.CopyIn(dstIndex, e, srcIndex, length)
}

func (e *arrayEndpoint) CopyIn(dstIndex int, src api.Endpoint, srcIndex, length int) error {
	return src.CopyOut(srcIndex, e, dstIndex, length)
}

// opaqueEndpoint exposes neither a raw address nor a backing array, forcing
// the generic double-dispatch fallback through an inner array peer.
type opaqueEndpoint struct {
	inner arrayEndpoint
}

func (e *opaqueEndpoint) Capacity() int { return len(e.inner.data) }

func (e *opaqueEndpoint) CopyOut(srcIndex int, dst api.Endpoint, dstIndex, length int) error {
	return dst.CopyIn(dstIndex, &e.inner, srcIndex, length)
}

func (e *opaqueEndpoint) CopyIn(dstIndex int, src api.Endpoint, srcIndex, length int) error {
	return src.CopyOut(srcIndex, &e.inner, dstIndex, length)
}

func TestBufferToBufferRawPath(t *testing.T) {
	src := newBuf(t, 16, 16)
	dst := newBuf(t, 16, 16)
	defer src.Release()
	defer dst.Release()
	fill(t, src)

	if err := src.GetBytes(4, dst, 2, 8); err != nil {
		t.Fatalf("GetBytes: %v", err)
	}
	for i := 0; i < 8; i++ {
		v, err := dst.GetByte(2 + i)
		if err != nil || v != byte(4+i) {
			t.Fatalf("dst byte %d = %d, %v", 2+i, v, err)
		}
	}
}

func TestSetBytesFromBuffer(t *testing.T) {
	src := newBuf(t, 8, 8)
	dst := newBuf(t, 8, 8)
	defer src.Release()
	defer dst.Release()
	fill(t, src)

	if err := dst.SetBytes(0, src, 0, 8); err != nil {
		t.Fatalf("SetBytes: %v", err)
	}
	v, _ := dst.GetByte(7)
	if v != 7 {
		t.Errorf("dst byte 7 = %d", v)
	}
}

func TestTransferToArrayEndpoint(t *testing.T) {
	src := newBuf(t, 8, 8)
	defer src.Release()
	fill(t, src)

	dst := &arrayEndpoint{data: make([]byte, 8)}
	if err := src.GetBytes(2, dst, 1, 4); err != nil {
		t.Fatalf("GetBytes: %v", err)
	}
	want := []byte{0, 2, 3, 4, 5, 0, 0, 0}
	for i, w := range want {
		if dst.data[i] != w {
			t.Errorf("dst[%d] = %d, want %d", i, dst.data[i], w)
		}
	}
}

func TestTransferFromArrayEndpoint(t *testing.T) {
	dst := newBuf(t, 8, 8)
	defer dst.Release()

	src := &arrayEndpoint{data: []byte{10, 20, 30, 40}}
	if err := dst.SetBytes(4, src, 0, 4); err != nil {
		t.Fatalf("SetBytes: %v", err)
	}
	v, _ := dst.GetByte(5)
	if v != 20 {
		t.Errorf("byte 5 = %d, want 20", v)
	}
}

func TestGenericDoubleDispatch(t *testing.T) {
	src := newBuf(t, 8, 8)
	defer src.Release()
	fill(t, src)

	dst := &opaqueEndpoint{inner: arrayEndpoint{data: make([]byte, 8)}}
	if err := src.GetBytes(0, dst, 0, 8); err != nil {
		t.Fatalf("GetBytes via generic path: %v", err)
	}
	for i := 0; i < 8; i++ {
		if dst.inner.data[i] != byte(i) {
			t.Fatalf("generic path byte %d = %d", i, dst.inner.data[i])
		}
	}

	back := newBuf(t, 8, 8)
	defer back.Release()
	if err := back.SetBytes(0, dst, 0, 8); err != nil {
		t.Fatalf("SetBytes via generic path: %v", err)
	}
	v, _ := back.GetByte(3)
	if v != 3 {
		t.Errorf("byte 3 = %d", v)
	}
}

func TestSliceTransfer(t *testing.T) {
	b := newBuf(t, 8, 8)
	defer b.Release()
	fill(t, b)

	out := make([]byte, 4)
	if err := b.GetBytesToSlice(2, out, 0, 4); err != nil {
		t.Fatalf("GetBytesToSlice: %v", err)
	}
	for i, w := range []byte{2, 3, 4, 5} {
		if out[i] != w {
			t.Errorf("out[%d] = %d, want %d", i, out[i], w)
		}
	}

	if err := b.SetBytesFromSlice(0, []byte{0xFF, 0xFE}, 0, 2); err != nil {
		t.Fatalf("SetBytesFromSlice: %v", err)
	}
	v, _ := b.GetByte(1)
	if v != 0xFE {
		t.Errorf("byte 1 = %#x", v)
	}
}

func TestZeroLengthTransferWithNilSlice(t *testing.T) {
	b := newBuf(t, 8, 8)
	defer b.Release()

	if err := b.GetBytesToSlice(0, nil, 0, 0); err != nil {
		t.Errorf("zero-length get with nil dst: %v", err)
	}
	if err := b.SetBytesFromSlice(0, nil, 0, 0); err != nil {
		t.Errorf("zero-length set with nil src: %v", err)
	}
}

func TestTransferBoundsNoPartialCopy(t *testing.T) {
	src := newBuf(t, 8, 8)
	dst := newBuf(t, 4, 4)
	defer src.Release()
	defer dst.Release()
	fill(t, src)

	if err := src.GetBytes(0, dst, 0, 8); !errors.Is(err, api.ErrOutOfBounds) {
		t.Fatalf("oversized transfer = %v", err)
	}
	// Nothing may have been copied.
	for i := 0; i < 4; i++ {
		v, _ := dst.GetByte(i)
		if v != 0 {
			t.Errorf("partial copy leaked into dst[%d] = %d", i, v)
		}
	}

	if err := src.GetBytes(-1, dst, 0, 2); !errors.Is(err, api.ErrOutOfBounds) {
		t.Errorf("negative index = %v", err)
	}
	if err := src.GetBytesToSlice(0, make([]byte, 2), 1, 2); !errors.Is(err, api.ErrOutOfBounds) {
		t.Errorf("dst range overflow = %v", err)
	}
}

func TestCopyIndependence(t *testing.T) {
	b := newBuf(t, 8, 64)
	defer b.Release()
	fill(t, b)

	c, err := b.Copy(2, 4)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	defer c.Release()

	if c.Capacity() != 4 || c.MaxCapacity() != 4 {
		t.Errorf("copy capacity/max = %d/%d, want 4/4", c.Capacity(), c.MaxCapacity())
	}
	for i, w := range []byte{2, 3, 4, 5} {
		v, err := c.GetByte(i)
		if err != nil || v != w {
			t.Fatalf("copy byte %d = %d, %v", i, v, err)
		}
	}
	if c.Cursor().Readable() != 4 {
		t.Errorf("copy readable = %d, want 4", c.Cursor().Readable())
	}

	// Mutating the copy never affects the source.
	if err := c.SetByte(0, 0x99); err != nil {
		t.Fatalf("SetByte on copy: %v", err)
	}
	v, _ := b.GetByte(2)
	if v != 2 {
		t.Errorf("source mutated through copy: %d", v)
	}
}

func TestCopyZeroLength(t *testing.T) {
	b := newBuf(t, 8, 8)
	defer b.Release()
	c, err := b.Copy(3, 0)
	if err != nil {
		t.Fatalf("Copy(3, 0): %v", err)
	}
	defer c.Release()
	if c.Capacity() != 0 {
		t.Errorf("capacity = %d", c.Capacity())
	}
}
