// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

// Package bcmode is a reference table of LuaJIT bytecode opcodes: their
// names and the operand [Mode] each of an instruction's A, B, and C fields
// takes. It does not interpret operand values; it only says what kind of
// thing each field addresses (a register, an upvalue, a constant, a jump
// target, and so on) so that a disassembler or other consumer of
// [dislua.dev/ljbc] can render an instruction meaningfully.
//
// LuaJIT 2.0 (dump version 1) and LuaJIT 2.1 (dump version 2) assign
// opcodes differently: version 2 inserts ISTYPE, ISNUM, TGETR, and TSETR
// into the middle of the table used by version 1. Use [ForVersion] to
// select the table matching a dump's version.
package bcmode
