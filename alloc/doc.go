// Package alloc
// Author: momentics <momentics@gmail.com>
//
// Memory region allocators for rawbuf.
// Backends: Go-heap fallback, anonymous mmap (hugepage-capable on Linux),
// and memory-mapped files. The free-list wrapper recycles released regions
// by size class; the instrumented wrapper adds Prometheus counters and
// structured logging. All backends are safe for concurrent use.
// See heap.go, mmap_linux.go, mapped.go, freelist.go, instrument.go.
package alloc
