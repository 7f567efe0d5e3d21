// File: alloc/mmap_linux.go
//go:build linux

// Package alloc: Linux mmap backend.
//
// Regions come from anonymous private mappings, optionally on 2 MiB
// hugepages. Hugepage allocation falls back to regular pages, which in turn
// fall back to the heap, so Allocate only fails when the address space is
// truly exhausted.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/rawbuf/api"
)

const hugePageSize = 2 << 20

// mmapRegion keeps the full mapping separate from the usable view, since
// munmap must cover the rounded-up length.
type mmapRegion struct {
	view    []byte
	mapping []byte
}

func (r *mmapRegion) Size() int      { return len(r.view) }
func (r *mmapRegion) Bytes() []byte  { return r.view }
func (r *mmapRegion) ReadOnly() bool { return false }

func (r *mmapRegion) Release() {
	if r.mapping == nil {
		return
	}
	_ = unix.Munmap(r.mapping)
	r.mapping = nil
	r.view = nil
}

// Mmap allocates regions via anonymous private mappings.
type Mmap struct {
	counters
	hugePages bool
}

// NewMmap returns the mmap-backed allocator. With hugePages set, each
// region is rounded to a hugepage boundary and mapped with MAP_HUGETLB
// when the kernel permits.
func NewMmap(hugePages bool) api.Allocator {
	return &Mmap{hugePages: hugePages}
}

func (m *Mmap) Allocate(size int) (api.Region, error) {
	if size < 0 {
		return nil, fmt.Errorf("allocate %d: %w", size, api.ErrInvalidArgument)
	}
	if size == 0 {
		m.allocated(0)
		return &sliceRegion{data: []byte{}}, nil
	}

	var data []byte
	var err error
	if m.hugePages {
		length := ((size + hugePageSize - 1) / hugePageSize) * hugePageSize
		data, err = unix.Mmap(-1, 0, length,
			unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
	}
	if data == nil {
		data, err = unix.Mmap(-1, 0, size,
			unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	}
	if err != nil {
		// Last resort: plain heap region, same as the pools do when the
		// kernel refuses a mapping.
		data = make([]byte, size)
		m.allocated(size)
		return &sliceRegion{data: data}, nil
	}

	m.allocated(size)
	return &mmapRegion{view: data[:size], mapping: data}, nil
}

func (m *Mmap) Free(r api.Region) {
	if r == nil {
		return
	}
	m.freed(r.Size())
	r.Release()
}

func (m *Mmap) Stats() api.AllocatorStats { return m.stats() }
