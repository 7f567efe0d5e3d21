// File: alloc/default.go
// Author: momentics <momentics@gmail.com>

package alloc

import (
	"sync"

	"github.com/momentics/rawbuf/api"
)

var (
	defaultOnce  sync.Once
	defaultAlloc api.Allocator
)

// Default returns a process-wide allocator so components that do not care
// about backends share one accounting domain. It is the mmap backend where
// available, heap elsewhere.
func Default() api.Allocator {
	defaultOnce.Do(func() {
		defaultAlloc = NewMmap(false)
	})
	return defaultAlloc
}
