package alloc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/momentics/rawbuf/alloc"
)

func TestMappedAllocate(t *testing.T) {
	a, err := alloc.NewMapped(t.TempDir())
	if err != nil {
		t.Fatalf("NewMapped: %v", err)
	}
	r, err := a.Allocate(4096)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	b := r.Bytes()
	copy(b, "hello mapped world")
	if string(b[:5]) != "hello" {
		t.Error("mapped region content mismatch")
	}
	a.Free(r)
	if st := a.Stats(); st.InUse != 0 {
		t.Errorf("stats after free: %+v", st)
	}
}

func TestMapFileReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixed.mem")
	if err := os.WriteFile(path, []byte("abcdef"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	r, err := alloc.MapFile(path, true)
	if err != nil {
		t.Fatalf("MapFile: %v", err)
	}
	defer r.Release()
	if !r.ReadOnly() {
		t.Error("read-only mapping reports writable")
	}
	if string(r.Bytes()) != "abcdef" {
		t.Errorf("content = %q", r.Bytes())
	}
	if r.Size() != 6 {
		t.Errorf("size = %d", r.Size())
	}
}

func TestMapFileWritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rw.mem")
	if err := os.WriteFile(path, make([]byte, 64), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	r, err := alloc.MapFile(path, false)
	if err != nil {
		t.Fatalf("MapFile: %v", err)
	}
	defer r.Release()
	if r.ReadOnly() {
		t.Error("writable mapping reports read-only")
	}
	r.Bytes()[0] = 0x42
}
