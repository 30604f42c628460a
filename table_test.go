// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package ljbc

import "testing"

func TestTableValueAccessors(t *testing.T) {
	tests := []struct {
		name string
		v    TableValue
	}{
		{"nil", NilTableValue()},
		{"false", BoolTableValue(false)},
		{"true", BoolTableValue(true)},
		{"int", IntTableValue(-42)},
		{"float", FloatTableValue(3.5)},
		{"string", StringTableValue("hello")},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got, want := test.v.IsNil(), test.name == "nil"; got != want {
				t.Errorf("IsNil() = %t, want %t", got, want)
			}
			if b, ok := test.v.Bool(); ok != (test.name == "false" || test.name == "true") {
				t.Errorf("Bool() ok = %t", ok)
			} else if ok && b != (test.name == "true") {
				t.Errorf("Bool() = %t, want %t", b, test.name == "true")
			}
			if i, ok := test.v.Int32(); ok != (test.name == "int") {
				t.Errorf("Int32() ok = %t", ok)
			} else if ok && i != -42 {
				t.Errorf("Int32() = %d, want -42", i)
			}
			if f, ok := test.v.Float64(); ok != (test.name == "float") {
				t.Errorf("Float64() ok = %t", ok)
			} else if ok && f != 3.5 {
				t.Errorf("Float64() = %v, want 3.5", f)
			}
			if s, ok := test.v.String(); ok != (test.name == "string") {
				t.Errorf("String() ok = %t", ok)
			} else if ok && s != "hello" {
				t.Errorf("String() = %q, want %q", s, "hello")
			}
		})
	}
}

func TestTableValueEquality(t *testing.T) {
	if IntTableValue(0) != IntTableValue(0) {
		t.Error("IntTableValue(0) != IntTableValue(0)")
	}
	if IntTableValue(0) == FloatTableValue(0) {
		t.Error("IntTableValue(0) == FloatTableValue(0), want distinct")
	}
	if NilTableValue() == BoolTableValue(false) {
		t.Error("NilTableValue() == BoolTableValue(false), want distinct")
	}
}

func TestTableArrayPrefixLen(t *testing.T) {
	tab := NewTable()
	tab.Set(IntTableValue(0), StringTableValue("a"))
	tab.Set(IntTableValue(1), StringTableValue("b"))
	tab.Set(IntTableValue(2), StringTableValue("c"))
	tab.Set(StringTableValue("x"), IntTableValue(1))
	if got, want := tab.arrayPrefixLen(), 3; got != want {
		t.Errorf("arrayPrefixLen() = %d, want %d", got, want)
	}

	sparse := NewTable()
	sparse.Set(IntTableValue(0), StringTableValue("a"))
	sparse.Set(IntTableValue(2), StringTableValue("c"))
	if got, want := sparse.arrayPrefixLen(), 1; got != want {
		t.Errorf("arrayPrefixLen() = %d, want %d", got, want)
	}
}

func TestTableEqual(t *testing.T) {
	a := NewTable()
	a.Set(IntTableValue(0), StringTableValue("x"))
	b := NewTable()
	b.Set(IntTableValue(0), StringTableValue("x"))
	if !a.Equal(b) {
		t.Error("a.Equal(b) = false, want true")
	}
	b.Set(IntTableValue(1), NilTableValue())
	if a.Equal(b) {
		t.Error("a.Equal(b) = true after mutating b, want false")
	}
}
