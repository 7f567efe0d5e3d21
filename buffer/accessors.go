// File: buffer/accessors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Width-specific raw accessors. Multi-byte values always load and store in
// host order; a non-native order costs one byte swap on the value, never a
// second memory access. The 24-bit accessors are assembled byte-at-a-time
// in big-endian bit order, the network-protocol convention.

package buffer

import (
	"math/bits"

	"github.com/momentics/rawbuf/api"
	"github.com/momentics/rawbuf/internal/raw"
)

// GetByte reads the byte at index.
func (b *Buffer) GetByte(index int) (byte, error) {
	if err := b.checkIndex(index, 1); err != nil {
		return 0, err
	}
	return raw.Load8(b.addr(index)), nil
}

// SetByte writes the byte at index.
func (b *Buffer) SetByte(index int, v byte) error {
	if err := b.checkIndex(index, 1); err != nil {
		return err
	}
	raw.Store8(b.addr(index), v)
	return nil
}

// GetUint16 reads a 16-bit value at index in the requested order.
func (b *Buffer) GetUint16(index int, order api.ByteOrder) (uint16, error) {
	if err := b.checkIndex(index, 2); err != nil {
		return 0, err
	}
	v := raw.Load16(b.addr(index))
	if !order.Native() {
		v = bits.ReverseBytes16(v)
	}
	return v, nil
}

// SetUint16 writes a 16-bit value at index in the requested order.
func (b *Buffer) SetUint16(index int, v uint16, order api.ByteOrder) error {
	if err := b.checkIndex(index, 2); err != nil {
		return err
	}
	if !order.Native() {
		v = bits.ReverseBytes16(v)
	}
	raw.Store16(b.addr(index), v)
	return nil
}

// GetUint24 reads a 3-byte big-endian value at index.
func (b *Buffer) GetUint24(index int) (uint32, error) {
	if err := b.checkIndex(index, 3); err != nil {
		return 0, err
	}
	a := b.addr(index)
	return uint32(raw.Load8(a))<<16 |
		uint32(raw.Load8(a+1))<<8 |
		uint32(raw.Load8(a+2)), nil
}

// SetUint24 writes the low 24 bits of v at index, big-endian.
func (b *Buffer) SetUint24(index int, v uint32) error {
	if err := b.checkIndex(index, 3); err != nil {
		return err
	}
	a := b.addr(index)
	raw.Store8(a, byte(v>>16))
	raw.Store8(a+1, byte(v>>8))
	raw.Store8(a+2, byte(v))
	return nil
}

// GetUint32 reads a 32-bit value at index in the requested order.
func (b *Buffer) GetUint32(index int, order api.ByteOrder) (uint32, error) {
	if err := b.checkIndex(index, 4); err != nil {
		return 0, err
	}
	v := raw.Load32(b.addr(index))
	if !order.Native() {
		v = bits.ReverseBytes32(v)
	}
	return v, nil
}

// SetUint32 writes a 32-bit value at index in the requested order.
func (b *Buffer) SetUint32(index int, v uint32, order api.ByteOrder) error {
	if err := b.checkIndex(index, 4); err != nil {
		return err
	}
	if !order.Native() {
		v = bits.ReverseBytes32(v)
	}
	raw.Store32(b.addr(index), v)
	return nil
}

// GetUint64 reads a 64-bit value at index in the requested order.
func (b *Buffer) GetUint64(index int, order api.ByteOrder) (uint64, error) {
	if err := b.checkIndex(index, 8); err != nil {
		return 0, err
	}
	v := raw.Load64(b.addr(index))
	if !order.Native() {
		v = bits.ReverseBytes64(v)
	}
	return v, nil
}

// SetUint64 writes a 64-bit value at index in the requested order.
func (b *Buffer) SetUint64(index int, v uint64, order api.ByteOrder) error {
	if err := b.checkIndex(index, 8); err != nil {
		return err
	}
	if !order.Native() {
		v = bits.ReverseBytes64(v)
	}
	raw.Store64(b.addr(index), v)
	return nil
}

// Signed convenience wrappers.

func (b *Buffer) GetInt16(index int, order api.ByteOrder) (int16, error) {
	v, err := b.GetUint16(index, order)
	return int16(v), err
}

func (b *Buffer) SetInt16(index int, v int16, order api.ByteOrder) error {
	return b.SetUint16(index, uint16(v), order)
}

func (b *Buffer) GetInt32(index int, order api.ByteOrder) (int32, error) {
	v, err := b.GetUint32(index, order)
	return int32(v), err
}

func (b *Buffer) SetInt32(index int, v int32, order api.ByteOrder) error {
	return b.SetUint32(index, uint32(v), order)
}

func (b *Buffer) GetInt64(index int, order api.ByteOrder) (int64, error) {
	v, err := b.GetUint64(index, order)
	return int64(v), err
}

func (b *Buffer) SetInt64(index int, v int64, order api.ByteOrder) error {
	return b.SetUint64(index, uint64(v), order)
}
