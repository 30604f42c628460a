// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package bcmode

//go:generate go tool stringer -type=Mode

// Mode identifies what kind of thing an instruction operand addresses.
type Mode byte

// Operand modes.
const (
	// ModeNone marks an operand the instruction does not use.
	ModeNone Mode = iota
	// ModeDst addresses a destination register.
	ModeDst
	// ModeBase addresses a register and everything above it on the stack.
	ModeBase
	// ModeVar addresses a register holding an arbitrary value.
	ModeVar
	// ModeRBase is like ModeBase but relative to the current call frame.
	ModeRBase
	// ModeUV is an index into the running closure's upvalue array.
	ModeUV
	// ModeLit is a literal unsigned integer.
	ModeLit
	// ModeLits is a literal signed integer.
	ModeLits
	// ModePri is a literal encoding one of the primitive values nil, true,
	// or false.
	ModePri
	// ModeNum is an index into the prototype's numeric constant array.
	ModeNum
	// ModeStr is an index into the prototype's GC constant array,
	// interpreted as a string.
	ModeStr
	// ModeTab is an index into the prototype's GC constant array,
	// interpreted as a template table.
	ModeTab
	// ModeFunc is an index into the prototype's GC constant array,
	// interpreted as a child function prototype.
	ModeFunc
	// ModeJump is a relative jump target, biased by 0x8000.
	ModeJump
	// ModeCData is an index into the prototype's GC constant array,
	// interpreted as FFI cdata.
	ModeCData
)

// OpInfo describes one opcode: its mnemonic and the mode of each of an
// instruction's A, B, and C operand fields. For an AD-format instruction, B
// is [ModeNone] and C describes the combined D operand.
type OpInfo struct {
	Name    string
	A, B, C Mode
}

// ForVersion returns the opcode table for the given dump version (1 or 2),
// indexed by [dislua.dev/ljbc.Instruction.OpCode]. It reports false for any
// other version.
func ForVersion(version uint8) (_ []OpInfo, ok bool) {
	switch version {
	case 1:
		return v1Opcodes[:], true
	case 2:
		return v2Opcodes[:], true
	default:
		return nil, false
	}
}

// Lookup returns the [OpInfo] for op in the opcode table for the given dump
// version. It reports false if the version is unrecognized or op has no
// entry in that version's table.
func Lookup(version uint8, op uint8) (OpInfo, bool) {
	table, ok := ForVersion(version)
	if !ok || int(op) >= len(table) {
		return OpInfo{}, false
	}
	return table[op], true
}
