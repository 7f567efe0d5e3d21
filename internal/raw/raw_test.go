package raw_test

import (
	"bytes"
	"testing"

	"github.com/momentics/rawbuf/internal/raw"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	data := make([]byte, 16)
	base := raw.BaseAddress(data)

	raw.Store64(base, 0x1122334455667788)
	if v := raw.Load64(base); v != 0x1122334455667788 {
		t.Errorf("Load64 = %#x", v)
	}
	raw.Store32(base+8, 0xdeadbeef)
	if v := raw.Load32(base + 8); v != 0xdeadbeef {
		t.Errorf("Load32 = %#x", v)
	}
	raw.Store8(base+15, 0x7f)
	if data[15] != 0x7f {
		t.Errorf("Store8 wrote %#x", data[15])
	}
}

func TestCopyOverlap(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	base := raw.BaseAddress(data)
	raw.Copy(base+2, base, 4)
	if !bytes.Equal(data, []byte{0, 1, 0, 1, 2, 3, 6, 7}) {
		t.Errorf("overlapping copy corrupted data: %v", data)
	}
}

func TestZeroLength(t *testing.T) {
	// Must not dereference anything.
	raw.Copy(0, 0, 0)
	raw.CopyToSlice(0, nil)
	raw.CopyFromSlice(0, nil)
	if raw.BaseAddress(nil) != 0 {
		t.Error("nil slice has a base address")
	}
}
