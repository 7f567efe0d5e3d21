package buffer_test

import (
	"testing"

	"github.com/momentics/rawbuf/alloc"
	"github.com/momentics/rawbuf/api"
	"github.com/momentics/rawbuf/buffer"
)

func BenchmarkSetUint64Native(b *testing.B) {
	buf, err := buffer.New(alloc.NewHeap(), 4096, 4096)
	if err != nil {
		b.Fatal(err)
	}
	defer buf.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.SetUint64((i%512)*8, uint64(i), api.NativeOrder)
	}
}

func BenchmarkSetUint64Swapped(b *testing.B) {
	buf, err := buffer.New(alloc.NewHeap(), 4096, 4096)
	if err != nil {
		b.Fatal(err)
	}
	defer buf.Release()
	order := api.NativeOrder.Opposite()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.SetUint64((i%512)*8, uint64(i), order)
	}
}

func BenchmarkBufferToBufferTransfer(b *testing.B) {
	src, err := buffer.New(alloc.NewHeap(), 64*1024, 64*1024)
	if err != nil {
		b.Fatal(err)
	}
	defer src.Release()
	dst, err := buffer.New(alloc.NewHeap(), 64*1024, 64*1024)
	if err != nil {
		b.Fatal(err)
	}
	defer dst.Release()

	b.SetBytes(64 * 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := src.GetBytes(0, dst, 0, 64*1024); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSliceTransfer(b *testing.B) {
	src, err := buffer.New(alloc.NewHeap(), 4096, 4096)
	if err != nil {
		b.Fatal(err)
	}
	defer src.Release()
	out := make([]byte, 4096)

	b.SetBytes(4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := src.GetBytesToSlice(0, out, 0, 4096); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResizeGrow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf, err := buffer.New(alloc.NewHeap(), 1024, 64*1024)
		if err != nil {
			b.Fatal(err)
		}
		if err := buf.Resize(32 * 1024); err != nil {
			b.Fatal(err)
		}
		buf.Release()
	}
}
