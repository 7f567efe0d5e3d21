// File: alloc/freelist.go
// Package alloc: size-classed region recycling.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FreeList sits in front of another backend and keeps released regions on
// per-class FIFO queues instead of returning them immediately. Requests are
// rounded up to the next size class so a recycled region always fits.

package alloc

import (
	"fmt"
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/rawbuf/api"
)

// Predefined (power-of-two) region size classes (bytes).
// This table can be tuned for deployment needs.
var defaultSizeClasses = []int{
	2 * 1024,        // 2K
	4 * 1024,        // 4K
	8 * 1024,        // 8K
	16 * 1024,       // 16K
	32 * 1024,       // 32K
	64 * 1024,       // 64K
	128 * 1024,      // 128K
	256 * 1024,      // 256K
	512 * 1024,      // 512K
	1 * 1024 * 1024, // 1M
}

const defaultListDepth = 64

// FreeList recycles freed regions by size class.
type FreeList struct {
	counters

	backend api.Allocator
	classes []int
	depth   int

	mu    sync.Mutex
	lists map[int]*queue.Queue // size class -> recycled regions
}

// NewFreeList wraps backend with recycling. classes nil means the default
// power-of-two table; depth <= 0 means the default per-class depth.
func NewFreeList(backend api.Allocator, classes []int, depth int) *FreeList {
	if len(classes) == 0 {
		classes = defaultSizeClasses
	}
	if depth <= 0 {
		depth = defaultListDepth
	}
	return &FreeList{
		backend: backend,
		classes: classes,
		depth:   depth,
		lists:   make(map[int]*queue.Queue),
	}
}

// classFor returns the smallest class >= size, or size itself when the
// request exceeds the largest class (those regions are never recycled).
func (fl *FreeList) classFor(size int) (int, bool) {
	for _, c := range fl.classes {
		if size <= c {
			return c, true
		}
	}
	return size, false
}

func (fl *FreeList) Allocate(size int) (api.Region, error) {
	if size < 0 {
		return nil, fmt.Errorf("allocate %d: %w", size, api.ErrInvalidArgument)
	}
	class, pooled := fl.classFor(size)
	if pooled {
		fl.mu.Lock()
		if q, ok := fl.lists[class]; ok && q.Length() > 0 {
			r := q.Remove().(api.Region)
			fl.mu.Unlock()
			fl.allocated(r.Size())
			return r, nil
		}
		fl.mu.Unlock()
	}
	r, err := fl.backend.Allocate(class)
	if err != nil {
		return nil, err
	}
	fl.allocated(r.Size())
	return r, nil
}

func (fl *FreeList) Free(r api.Region) {
	if r == nil {
		return
	}
	fl.freed(r.Size())

	class, pooled := fl.classFor(r.Size())
	if pooled && class == r.Size() && !r.ReadOnly() {
		fl.mu.Lock()
		q, ok := fl.lists[class]
		if !ok {
			q = queue.New()
			fl.lists[class] = q
		}
		if q.Length() < fl.depth {
			q.Add(r)
			fl.mu.Unlock()
			return
		}
		fl.mu.Unlock()
	}
	fl.backend.Free(r)
}

func (fl *FreeList) Stats() api.AllocatorStats { return fl.stats() }

// Drain releases every cached region back to the backend.
func (fl *FreeList) Drain() {
	fl.mu.Lock()
	lists := fl.lists
	fl.lists = make(map[int]*queue.Queue)
	fl.mu.Unlock()

	for _, q := range lists {
		for q.Length() > 0 {
			fl.backend.Free(q.Remove().(api.Region))
		}
	}
}

var _ api.Allocator = (*FreeList)(nil)
