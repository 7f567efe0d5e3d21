// File: internal/raw/raw.go
// Package raw provides unchecked load/store and copy primitives over
// absolute addresses.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Callers are responsible for index validation and for keeping the backing
// region alive across a call. Nothing here checks bounds.

package raw

import "unsafe"

var hostBigEndian = func() bool {
	x := uint16(0x0102)
	return *(*byte)(unsafe.Pointer(&x)) == 0x01
}()

// HostBigEndian reports whether the executing platform stores multi-byte
// integers most-significant byte first.
func HostBigEndian() bool { return hostBigEndian }

// BaseAddress returns the absolute address of the first byte of b, or zero
// for a nil or empty slice.
func BaseAddress(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// ByteSlice reinterprets n bytes starting at addr as a slice.
func ByteSlice(addr uintptr, n int) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
}

func Load8(addr uintptr) byte    { return *(*byte)(unsafe.Pointer(addr)) }
func Load16(addr uintptr) uint16 { return *(*uint16)(unsafe.Pointer(addr)) }
func Load32(addr uintptr) uint32 { return *(*uint32)(unsafe.Pointer(addr)) }
func Load64(addr uintptr) uint64 { return *(*uint64)(unsafe.Pointer(addr)) }

func Store8(addr uintptr, v byte)    { *(*byte)(unsafe.Pointer(addr)) = v }
func Store16(addr uintptr, v uint16) { *(*uint16)(unsafe.Pointer(addr)) = v }
func Store32(addr uintptr, v uint32) { *(*uint32)(unsafe.Pointer(addr)) = v }
func Store64(addr uintptr, v uint64) { *(*uint64)(unsafe.Pointer(addr)) = v }

// Copy moves n bytes from src to dst. Overlapping ranges are handled the
// way the runtime memmove handles them.
func Copy(dst, src uintptr, n int) {
	if n == 0 {
		return
	}
	copy(ByteSlice(dst, n), ByteSlice(src, n))
}

// CopyToSlice moves len(dst) bytes starting at src into dst.
func CopyToSlice(src uintptr, dst []byte) {
	if len(dst) == 0 {
		return
	}
	copy(dst, ByteSlice(src, len(dst)))
}

// CopyFromSlice moves len(src) bytes from src to the memory at dst.
func CopyFromSlice(dst uintptr, src []byte) {
	if len(src) == 0 {
		return
	}
	copy(ByteSlice(dst, len(src)), src)
}
