// File: api/order.go
// Author: momentics <momentics@gmail.com>
//
// Byte-order selection for multi-byte raw accessors. Accessors always load
// and store in host order; a non-native request costs exactly one register
// byte swap, never a re-read.

package api

import "github.com/momentics/rawbuf/internal/raw"

// ByteOrder selects the wire representation of multi-byte integers.
type ByteOrder uint8

const (
	// NativeOrder is whatever the host CPU uses.
	NativeOrder ByteOrder = iota
	BigEndian
	LittleEndian
)

// Native reports whether this order matches the host order, meaning the
// raw accessor fast path applies and no swap is needed.
func (o ByteOrder) Native() bool {
	switch o {
	case BigEndian:
		return raw.HostBigEndian()
	case LittleEndian:
		return !raw.HostBigEndian()
	default:
		return true
	}
}

// Opposite returns the reversed concrete order. NativeOrder resolves to the
// host order first.
func (o ByteOrder) Opposite() ByteOrder {
	if o.Native() {
		if raw.HostBigEndian() {
			return LittleEndian
		}
		return BigEndian
	}
	if raw.HostBigEndian() {
		return BigEndian
	}
	return LittleEndian
}

// HostOrder returns the concrete order of the executing platform.
func HostOrder() ByteOrder {
	if raw.HostBigEndian() {
		return BigEndian
	}
	return LittleEndian
}

func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	default:
		return "native"
	}
}
