// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

// Package ljbc implements a codec for the LuaJIT bytecode dump format
// produced by both LuaJIT 2.0 (dump version 1) and LuaJIT 2.1 (dump version
// 2).
//
// A [Dump] is decoded from bytes with [Dump.UnmarshalBinary] and re-encoded
// with [Dump.MarshalBinary]. The package performs no execution, validation
// of instruction operands, or disassembly; it is purely a bidirectional
// mapping between the wire format and an in-memory object graph of
// [Prototype] values. Bytecode operand semantics (which register or
// constant an instruction's fields refer to) live in the sibling package
// [dislua.dev/ljbc/bcmode] and are never consulted here.
package ljbc
