// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package ljbc

// magic is the three-byte signature at the start of every LuaJIT bytecode
// dump: the bytes 'ESC', 'L', 'J'.
var magic = [3]byte{0x1b, 'L', 'J'}

// DumpFlags is a bitset of properties recorded in a dump's header.
type DumpFlags uint32

// Dump header flag bits.
const (
	// DumpBigEndian indicates the target platform is big-endian. This
	// package does not itself byte-swap on the basis of this flag; see
	// [Dump.BigEndian].
	DumpBigEndian DumpFlags = 1 << iota
	// DumpStripDebug indicates the dump carries no debug info: no chunk
	// name, and no per-prototype line numbers, upvalue names, or variable
	// names.
	DumpStripDebug
	// DumpFFI indicates at least one prototype in the dump uses the FFI
	// library.
	DumpFFI
	// DumpFR2 indicates the dump uses the two-slot frame layout introduced
	// by LuaJIT 2.1 (version 2 only).
	DumpFR2

	dumpFlagsKnown = DumpBigEndian | DumpStripDebug | DumpFFI | DumpFR2
)

// Dump is a complete LuaJIT bytecode dump: a header plus the sequence of
// prototypes it contains.
type Dump struct {
	// Version is 1 for a LuaJIT 2.0 dump or 2 for a LuaJIT 2.1 dump.
	Version uint8
	// BigEndian, FFI, and FR2 mirror the corresponding [DumpFlags] bits.
	BigEndian bool
	FFI       bool
	FR2       bool
	// StripDebug reports whether the dump omits debug info. When true,
	// DebugName is empty and no prototype in Protos carries line numbers,
	// upvalue names, or variable names.
	StripDebug bool
	// DebugName is the source chunk name recorded in the header. It is
	// always empty when StripDebug is true.
	DebugName string
	// Protos holds every prototype found in the dump, in the order they
	// were encountered on the wire: nested (child) prototypes are dumped
	// before the prototypes that reference them, so Protos ends with the
	// dump's single root prototype.
	Protos []*Prototype
}

// Root returns the dump's outermost prototype: the chunk's top-level
// function. It panics if d has no prototypes, which cannot happen for a
// value produced by [Dump.UnmarshalBinary].
func (d *Dump) Root() *Prototype {
	return d.Protos[len(d.Protos)-1]
}
