// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package ljbc

import (
	"math"
	"strconv"
)

type tableValueType byte

const (
	tableValueNil    tableValueType = 0
	tableValueFalse  tableValueType = 1
	tableValueTrue   tableValueType = 2
	tableValueInt    tableValueType = 3
	tableValueFloat  tableValueType = 4
	tableValueString tableValueType = 5
)

// TableValue is a value that can appear as a key or a value inside a
// [Table]: nil, a boolean, a signed 32-bit integer, a double, or a byte
// string. The zero value is nil.
//
// TableValue is comparable, so it can be used directly as a Go map key.
type TableValue struct {
	bits uint64
	s    string
	t    tableValueType
}

// NilTableValue returns the nil [TableValue].
func NilTableValue() TableValue {
	return TableValue{}
}

// BoolTableValue converts a boolean to a [TableValue].
func BoolTableValue(b bool) TableValue {
	if b {
		return TableValue{t: tableValueTrue}
	}
	return TableValue{t: tableValueFalse}
}

// IntTableValue converts a signed 32-bit integer to a [TableValue].
func IntTableValue(i int32) TableValue {
	return TableValue{t: tableValueInt, bits: uint64(uint32(i))}
}

// FloatTableValue converts a double to a [TableValue].
func FloatTableValue(f float64) TableValue {
	return TableValue{t: tableValueFloat, bits: math.Float64bits(f)}
}

// StringTableValue converts a byte string to a [TableValue].
func StringTableValue(s string) TableValue {
	return TableValue{t: tableValueString, s: s}
}

// IsNil reports whether v is the nil value.
func (v TableValue) IsNil() bool {
	return v.t == tableValueNil
}

// Bool reports the value as a boolean and whether v is in fact a boolean.
func (v TableValue) Bool() (_ bool, isBool bool) {
	return v.t == tableValueTrue, v.t == tableValueTrue || v.t == tableValueFalse
}

// Int32 reports the value as a signed 32-bit integer and whether v is in
// fact an integer.
func (v TableValue) Int32() (_ int32, isInt bool) {
	return int32(uint32(v.bits)), v.t == tableValueInt
}

// Float64 reports the value as a double and whether v is in fact a double.
func (v TableValue) Float64() (_ float64, isFloat bool) {
	return math.Float64frombits(v.bits), v.t == tableValueFloat
}

// String reports the value as a byte string and whether v is in fact a
// string.
func (v TableValue) String() (_ string, isString bool) {
	return v.s, v.t == tableValueString
}

// GoString formats the value for debugging.
func (v TableValue) GoString() string {
	switch v.t {
	case tableValueNil:
		return "nil"
	case tableValueFalse:
		return "false"
	case tableValueTrue:
		return "true"
	case tableValueInt:
		i, _ := v.Int32()
		return strconv.FormatInt(int64(i), 10)
	case tableValueFloat:
		f, _ := v.Float64()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case tableValueString:
		return strconv.Quote(v.s)
	default:
		return "<invalid table value>"
	}
}

// Table is a LuaJIT table constant: an unordered mapping whose keys and
// values are each drawn from the [TableValue] sum type.
//
// On the wire, the dense run of consecutive integer keys starting at zero
// (the "array part") is stored separately from the remaining entries (the
// "hash part"). Table hides this distinction from callers; it is
// reconstructed automatically during encoding.
type Table struct {
	m map[TableValue]TableValue
}

// NewTable returns a new, empty [Table].
func NewTable() *Table {
	return &Table{m: make(map[TableValue]TableValue)}
}

// Get returns the value associated with key, and whether key is present.
func (t *Table) Get(key TableValue) (TableValue, bool) {
	v, ok := t.m[key]
	return v, ok
}

// Set associates key with value, overwriting any previous association.
func (t *Table) Set(key, value TableValue) {
	if t.m == nil {
		t.m = make(map[TableValue]TableValue)
	}
	t.m[key] = value
}

// Len returns the number of key/value pairs in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.m)
}

// arrayPrefixLen returns the length of the dense run of consecutive integer
// keys 0, 1, 2, ... present in the table.
func (t *Table) arrayPrefixLen() int {
	n := 0
	for {
		if _, ok := t.m[IntTableValue(int32(n))]; !ok {
			return n
		}
		n++
	}
}

// All calls yield for every key/value pair in the table, in an unspecified
// order.
func (t *Table) All(yield func(key, value TableValue) bool) {
	for k, v := range t.m {
		if !yield(k, v) {
			return
		}
	}
}

// Equal reports whether t and other contain the same key/value pairs.
func (t *Table) Equal(other *Table) bool {
	if t.Len() != other.Len() {
		return false
	}
	if t.Len() == 0 {
		return true
	}
	for k, v := range t.m {
		v2, ok := other.m[k]
		if !ok || v != v2 {
			return false
		}
	}
	return true
}
