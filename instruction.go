// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package ljbc

import "fmt"

// Instruction is a single 32-bit LuaJIT bytecode word. The codec treats it
// as opaque: it is stored and reproduced byte-for-byte, and this package
// never interprets what the operands mean. Operand semantics live in
// [dislua.dev/ljbc/bcmode].
//
// An Instruction packs four fields:
//
//	+----+----+----+----+
//	| B  | C  | A  | OP | Format ABC
//	+----+----+----+----+
//	|    D    | A  | OP | Format AD
//	+---------+----+----+
//	MSB               LSB
type Instruction uint32

// NewABCInstruction returns an Instruction with the given opcode and ABC
// operands.
func NewABCInstruction(op, a, b, c uint8) Instruction {
	return Instruction(op) | Instruction(a)<<8 | Instruction(c)<<16 | Instruction(b)<<24
}

// NewADInstruction returns an Instruction with the given opcode and combined
// AD operand.
func NewADInstruction(op, a uint8, d uint16) Instruction {
	return Instruction(op) | Instruction(a)<<8 | Instruction(d)<<16
}

// OpCode returns the instruction's opcode.
func (ins Instruction) OpCode() uint8 {
	return uint8(ins)
}

// ArgA returns the instruction's A operand.
func (ins Instruction) ArgA() uint8 {
	return uint8(ins >> 8)
}

// ArgB returns the instruction's B operand, valid for ABC-format
// instructions.
func (ins Instruction) ArgB() uint8 {
	return uint8(ins >> 24)
}

// ArgC returns the instruction's C operand, valid for ABC-format
// instructions.
func (ins Instruction) ArgC() uint8 {
	return uint8(ins >> 16)
}

// ArgD returns the instruction's combined D operand, valid for AD-format
// instructions.
func (ins Instruction) ArgD() uint16 {
	return uint16(ins >> 16)
}

// String formats the instruction's raw fields for debugging. It does not
// know the instruction's opcode name or format; see
// [dislua.dev/ljbc/bcmode] for that.
func (ins Instruction) String() string {
	return fmt.Sprintf("op=%#02x a=%#02x d=%#04x", ins.OpCode(), ins.ArgA(), ins.ArgD())
}
