// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package ljbc

import (
	"fmt"
	"strconv"
)

// ConstantKind identifies the payload carried by a [Constant].
type ConstantKind byte

// Constant kinds.
const (
	// ChildConstant marks a reference to a prototype nested inside the
	// prototype that owns this constant.
	ChildConstant ConstantKind = iota
	// TableConstant marks a [Table] value.
	TableConstant
	// Int64Constant marks a signed 64-bit integer value.
	Int64Constant
	// Uint64Constant marks an unsigned 64-bit integer value.
	Uint64Constant
	// ComplexConstant marks a complex double value, used for cdata numbers.
	ComplexConstant
	// StringConstant marks a byte string value.
	StringConstant
)

// Constant is a GC constant belonging to a [Prototype]: one of a reference
// to a child prototype, a table, a 64-bit integer (signed or unsigned), a
// complex number, or a string.
type Constant struct {
	kind  ConstantKind
	child *Prototype
	table *Table
	i64   int64
	u64   uint64
	c128  complex128
	s     string
}

// ChildConstantValue returns a [Constant] referencing a nested prototype.
func ChildConstantValue(p *Prototype) Constant {
	return Constant{kind: ChildConstant, child: p}
}

// TableConstantValue returns a [Constant] holding a table.
func TableConstantValue(t *Table) Constant {
	return Constant{kind: TableConstant, table: t}
}

// Int64ConstantValue returns a [Constant] holding a signed 64-bit integer.
func Int64ConstantValue(i int64) Constant {
	return Constant{kind: Int64Constant, i64: i}
}

// Uint64ConstantValue returns a [Constant] holding an unsigned 64-bit
// integer.
func Uint64ConstantValue(u uint64) Constant {
	return Constant{kind: Uint64Constant, u64: u}
}

// ComplexConstantValue returns a [Constant] holding a complex number.
func ComplexConstantValue(c complex128) Constant {
	return Constant{kind: ComplexConstant, c128: c}
}

// StringConstantValue returns a [Constant] holding a byte string.
func StringConstantValue(s string) Constant {
	return Constant{kind: StringConstant, s: s}
}

// Kind reports which payload the constant carries.
func (c Constant) Kind() ConstantKind {
	return c.kind
}

// Child returns the referenced prototype and whether c is a
// [ChildConstant].
func (c Constant) Child() (*Prototype, bool) {
	return c.child, c.kind == ChildConstant
}

// Table returns the table and whether c is a [TableConstant].
func (c Constant) Table() (*Table, bool) {
	return c.table, c.kind == TableConstant
}

// Int64 returns the integer and whether c is an [Int64Constant].
func (c Constant) Int64() (int64, bool) {
	return c.i64, c.kind == Int64Constant
}

// Uint64 returns the integer and whether c is a [Uint64Constant].
func (c Constant) Uint64() (uint64, bool) {
	return c.u64, c.kind == Uint64Constant
}

// Complex128 returns the number and whether c is a [ComplexConstant].
func (c Constant) Complex128() (complex128, bool) {
	return c.c128, c.kind == ComplexConstant
}

// StringValue returns the string and whether c is a [StringConstant].
func (c Constant) StringValue() (string, bool) {
	return c.s, c.kind == StringConstant
}

// String formats the constant for debugging. It is not a valid Lua literal
// for every kind: a child reference and a table are rendered as
// placeholders, since printing them in full risks unbounded recursion
// through the prototype graph.
func (c Constant) String() string {
	switch c.kind {
	case ChildConstant:
		return "<child prototype>"
	case TableConstant:
		return "<table>"
	case Int64Constant:
		return strconv.FormatInt(c.i64, 10)
	case Uint64Constant:
		return strconv.FormatUint(c.u64, 10)
	case ComplexConstant:
		return fmt.Sprintf("%v", c.c128)
	case StringConstant:
		return strconv.Quote(c.s)
	default:
		return "<invalid constant>"
	}
}
