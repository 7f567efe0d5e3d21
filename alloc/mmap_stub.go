// File: alloc/mmap_stub.go
//go:build !linux

// Package alloc: non-Linux stand-in for the mmap backend.
// Falls back to heap regions so the same configuration runs everywhere.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import "github.com/momentics/rawbuf/api"

// NewMmap returns a heap-backed allocator on platforms without the mmap
// backend. The hugePages hint is ignored.
func NewMmap(hugePages bool) api.Allocator {
	_ = hugePages
	return NewHeap()
}
