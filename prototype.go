// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package ljbc

// PrototypeFlags is a bitset of properties attached to a [Prototype].
type PrototypeFlags uint8

// Prototype flag bits.
const (
	// ProtoChild indicates the prototype has child prototypes.
	ProtoChild PrototypeFlags = 1 << iota
	// ProtoVarargs indicates the prototype is a vararg function.
	ProtoVarargs
	// ProtoFFI indicates the prototype uses the FFI library.
	ProtoFFI
	// ProtoNoJIT indicates the prototype has JIT compilation disabled.
	ProtoNoJIT
	// ProtoILoop indicates the prototype's bytecode has been patched (ILOOP
	// and similar).
	ProtoILoop

	protoFlagsKnown = ProtoChild | ProtoVarargs | ProtoFFI | ProtoNoJIT | ProtoILoop
)

// Has reports whether all bits set in mask are also set in f.
func (f PrototypeFlags) Has(mask PrototypeFlags) bool {
	return f&mask == mask
}

// Prototype is a single LuaJIT function prototype: its instructions,
// constants, upvalues, and (optionally) debug information.
//
// A Prototype decoded from a dump may reference other Prototype values
// nested within it as [ChildConstant] entries in Kgc; these are the
// prototypes for functions defined lexically inside this one.
type Prototype struct {
	Flags      PrototypeFlags
	NumParams  uint8
	FrameSize  uint8
	Ins        []Instruction
	Uv         []uint16
	Kgc        []Constant
	Knum       []float64
	// FirstLine and NumLine are zero when the prototype carries no debug
	// info (equivalently, len(LineInfo) == 0 && len(UvNames) == 0 &&
	// len(VarNames) == 0).
	FirstLine  uint32
	NumLine    uint32
	// LineInfo holds one source line number per instruction in Ins, absolute
	// (not relative to FirstLine). It is empty when the prototype was
	// stripped of debug info.
	LineInfo []uint32
	// UvNames holds one name per entry in Uv, in the same order.
	UvNames []string
	// VarNames describes the prototype's local variable slots.
	VarNames []Varname
}

// HasDebugInfo reports whether p carries debug info.
func (p *Prototype) HasDebugInfo() bool {
	return len(p.LineInfo) > 0 || len(p.UvNames) > 0 || len(p.VarNames) > 0
}

// NumUv returns the number of upvalues p captures.
func (p *Prototype) NumUv() int {
	return len(p.Uv)
}
