// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

// Package bytebuffer provides a two-cursor byte buffer used for decoding and
// encoding binary formats that are read and written independently of each
// other, along with the ULEB128 variable-length integer encoding used by
// LuaJIT's bytecode dump format.
package bytebuffer

import (
	"encoding/binary"
	"errors"
)

// ErrOutOfRange is returned by the Read family of methods when a read would
// advance the read cursor past the end of the buffer's contents.
var ErrOutOfRange = errors.New("bytebuffer: read index past end of buffer")

// Buffer is a byte store with independent read and write cursors. Unlike
// [bytes.Buffer], a Buffer's read cursor never consumes bytes from the
// underlying storage: writes past the read cursor remain visible to later
// reads, and each cursor advances independently of the other. Both can be
// moved back to the start with [*Buffer.ResetIndices].
//
// The zero value is an empty Buffer ready to use.
type Buffer struct {
	d  []byte
	ir int
	iw int
}

// New returns a new [Buffer] whose contents are p and whose read and write
// cursors are both zero.
func New(p []byte) *Buffer {
	return &Buffer{d: p}
}

// Reset replaces the buffer's contents with p and resets both cursors to
// zero.
func (b *Buffer) Reset(p []byte) {
	*b = Buffer{d: p}
}

// ResetIndices sets both the read and write cursor back to zero without
// discarding the buffer's contents.
func (b *Buffer) ResetIndices() {
	b.ir = 0
	b.iw = 0
}

// Size returns the number of bytes currently stored in the buffer.
func (b *Buffer) Size() int {
	return len(b.d)
}

// Bytes returns the buffer's entire contents. The returned slice aliases the
// buffer's storage and is invalidated by subsequent writes.
func (b *Buffer) Bytes() []byte {
	return b.d
}

// ReadIndex returns the current position of the read cursor.
func (b *Buffer) ReadIndex() int {
	return b.ir
}

// WriteIndex returns the current position of the write cursor.
func (b *Buffer) WriteIndex() int {
	return b.iw
}

// ReadByte reads a single byte at the read cursor and advances it by one.
func (b *Buffer) ReadByte() (byte, error) {
	if b.ir >= len(b.d) {
		return 0, ErrOutOfRange
	}
	v := b.d[b.ir]
	b.ir++
	return v, nil
}

// PeekByte reads a single byte at the read cursor without advancing it.
func (b *Buffer) PeekByte() (byte, error) {
	if b.ir >= len(b.d) {
		return 0, ErrOutOfRange
	}
	return b.d[b.ir], nil
}

// ReadBytes reads and returns a copy of the next n bytes at the read cursor,
// advancing it by n.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if n < 0 || b.ir+n > len(b.d) {
		return nil, ErrOutOfRange
	}
	p := append([]byte(nil), b.d[b.ir:b.ir+n]...)
	b.ir += n
	return p, nil
}

// ReadUint16 reads a little-endian 16-bit unsigned integer at the read
// cursor and advances it by two.
func (b *Buffer) ReadUint16() (uint16, error) {
	if b.ir+2 > len(b.d) {
		return 0, ErrOutOfRange
	}
	v := binary.LittleEndian.Uint16(b.d[b.ir:])
	b.ir += 2
	return v, nil
}

// ReadUint32 reads a little-endian 32-bit unsigned integer at the read
// cursor and advances it by four.
func (b *Buffer) ReadUint32() (uint32, error) {
	if b.ir+4 > len(b.d) {
		return 0, ErrOutOfRange
	}
	v := binary.LittleEndian.Uint32(b.d[b.ir:])
	b.ir += 4
	return v, nil
}

// WriteByte appends a single byte at the write cursor, extending the buffer
// if necessary, and advances the cursor by one.
func (b *Buffer) WriteByte(v byte) error {
	b.growTo(b.iw + 1)
	b.d[b.iw] = v
	b.iw++
	return nil
}

// WriteBytes appends p at the write cursor, extending the buffer if
// necessary, and advances the cursor by len(p).
func (b *Buffer) WriteBytes(p []byte) {
	b.growTo(b.iw + len(p))
	copy(b.d[b.iw:], p)
	b.iw += len(p)
}

// WriteUint16 appends a little-endian 16-bit unsigned integer at the write
// cursor and advances it by two.
func (b *Buffer) WriteUint16(v uint16) {
	b.growTo(b.iw + 2)
	binary.LittleEndian.PutUint16(b.d[b.iw:], v)
	b.iw += 2
}

// WriteUint32 appends a little-endian 32-bit unsigned integer at the write
// cursor and advances it by four.
func (b *Buffer) WriteUint32(v uint32) {
	b.growTo(b.iw + 4)
	binary.LittleEndian.PutUint32(b.d[b.iw:], v)
	b.iw += 4
}

// WriteBuffer appends the entire contents of other (regardless of other's
// own cursor positions) at the write cursor.
func (b *Buffer) WriteBuffer(other *Buffer) {
	b.WriteBytes(other.d)
}

// growTo ensures the buffer's storage is at least n bytes long. Newly added
// bytes are zero when new storage is allocated; when spare capacity is reused
// they keep whatever that capacity held, so callers overwrite them.
func (b *Buffer) growTo(n int) {
	if n <= len(b.d) {
		return
	}
	if n <= cap(b.d) {
		b.d = b.d[:n]
		return
	}
	nd := make([]byte, n, max(n, 2*cap(b.d)))
	copy(nd, b.d)
	b.d = nd
}

// ReadULEB128 reads a standard ULEB128-encoded unsigned integer at the read
// cursor, advancing it past the encoding.
func (b *Buffer) ReadULEB128() (uint32, error) {
	first, err := b.ReadByte()
	if err != nil {
		return 0, err
	}
	val := uint32(first)
	if val >= 0x80 {
		val &= 0x7f
		sh := uint(0)
		for {
			next, err := b.ReadByte()
			if err != nil {
				return 0, err
			}
			val |= uint32(next&0x7f) << (sh + 7)
			sh += 7
			if next < 0x80 {
				break
			}
		}
	}
	return val, nil
}

// WriteULEB128 appends val to the buffer using standard ULEB128 encoding.
func (b *Buffer) WriteULEB128(val uint32) {
	for val >= 0x80 {
		b.WriteByte(byte(val&0x7f) | 0x80)
		val >>= 7
	}
	b.WriteByte(byte(val))
}

// ReadULEB128_33 reads the 33-bit ULEB128 variant used for numeric constants
// and reports the tag bit that was packed into the first byte.
func (b *Buffer) ReadULEB128_33() (val uint32, tag bool, err error) {
	first, err := b.ReadByte()
	if err != nil {
		return 0, false, err
	}
	tag = first&1 != 0
	val = uint32(first) >> 1
	if val >= 0x40 {
		val &= 0x3f
		sh := -1
		for {
			next, err := b.ReadByte()
			if err != nil {
				return 0, false, err
			}
			sh += 7
			val |= uint32(next&0x7f) << sh
			if next < 0x80 {
				break
			}
		}
	}
	return val, tag, nil
}

// WriteULEB128_33 appends val to the buffer using the 33-bit ULEB128 variant,
// packing tag into the low bit of the first emitted byte.
func (b *Buffer) WriteULEB128_33(val uint32, tag bool) {
	// The doubling can carry into a 33rd bit (when val >= 1<<31), so it must
	// be done in a width wider than uint32 or the high bit is lost.
	index := b.iw
	wide := 1 + 2*uint64(val)
	for wide >= 0x80 {
		b.WriteByte(byte(wide&0x7f) | 0x80)
		wide >>= 7
	}
	b.WriteByte(byte(wide))
	if tag {
		b.d[index] |= 1
	} else {
		b.d[index] &^= 1
	}
}
