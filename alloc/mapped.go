// File: alloc/mapped.go
// Author: momentics <momentics@gmail.com>
//
// File-backed region allocator over memory-mapped files. Regions survive as
// files under the configured directory until freed, which makes buffer
// contents inspectable from outside the process.

package alloc

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/edsrzf/mmap-go"

	"github.com/momentics/rawbuf/api"
)

// mappedRegion is one mapped file.
type mappedRegion struct {
	m        mmap.MMap
	f        *os.File
	path     string
	size     int
	readOnly bool
	remove   bool
}

func (r *mappedRegion) Size() int      { return r.size }
func (r *mappedRegion) Bytes() []byte  { return r.m }
func (r *mappedRegion) ReadOnly() bool { return r.readOnly }

func (r *mappedRegion) Release() {
	if r.m != nil {
		_ = r.m.Unmap()
		r.m = nil
	}
	if r.f != nil {
		_ = r.f.Close()
		r.f = nil
	}
	if r.remove {
		_ = os.Remove(r.path)
	}
}

// Mapped allocates regions backed by files in dir.
type Mapped struct {
	counters
	dir string
	seq atomic.Uint64
}

// NewMapped returns a file-backed allocator rooted at dir, creating the
// directory if needed.
func NewMapped(dir string) (*Mapped, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mapped allocator dir: %w", err)
	}
	return &Mapped{dir: dir}, nil
}

func (a *Mapped) Allocate(size int) (api.Region, error) {
	if size < 0 {
		return nil, fmt.Errorf("allocate %d: %w", size, api.ErrInvalidArgument)
	}
	if size == 0 {
		a.allocated(0)
		return &sliceRegion{data: []byte{}}, nil
	}

	path := filepath.Join(a.dir, fmt.Sprintf("region-%d.mem", a.seq.Add(1)))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("mapped allocate: %w", err)
	}
	if err := f.Truncate(int64(size)); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("mapped allocate: %w", err)
	}
	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("mapped allocate: %w: %v", api.ErrOutOfMemory, err)
	}

	a.allocated(size)
	return &mappedRegion{m: m, f: f, path: path, size: size, remove: true}, nil
}

func (a *Mapped) Free(r api.Region) {
	if r == nil {
		return
	}
	a.freed(r.Size())
	r.Release()
}

func (a *Mapped) Stats() api.AllocatorStats { return a.stats() }

var _ api.Allocator = (*Mapped)(nil)

// MapFile maps an existing file as a standalone region, suitable for
// adopting into a buffer. Read-only mappings are rejected by buffer
// adoption, matching the write-through contract of the engine.
func MapFile(path string, readOnly bool) (api.Region, error) {
	flag := os.O_RDWR
	prot := mmap.RDWR
	if readOnly {
		flag = os.O_RDONLY
		prot = mmap.RDONLY
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("map file: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("map file: %w", err)
	}
	m, err := mmap.Map(f, prot, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("map file: %w", err)
	}
	return &mappedRegion{m: m, f: f, path: path, size: int(st.Size()), readOnly: readOnly}, nil
}
