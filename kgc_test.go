// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package ljbc

import "testing"

func TestConstantAccessors(t *testing.T) {
	child := &Prototype{}
	tests := []struct {
		name string
		c    Constant
		kind ConstantKind
	}{
		{"child", ChildConstantValue(child), ChildConstant},
		{"table", TableConstantValue(NewTable()), TableConstant},
		{"int64", Int64ConstantValue(-7), Int64Constant},
		{"uint64", Uint64ConstantValue(7), Uint64Constant},
		{"complex", ComplexConstantValue(complex(1, 2)), ComplexConstant},
		{"string", StringConstantValue("hi"), StringConstant},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.c.Kind(); got != test.kind {
				t.Errorf("Kind() = %v, want %v", got, test.kind)
			}
			if _, ok := test.c.Child(); ok != (test.kind == ChildConstant) {
				t.Errorf("Child() ok = %t", ok)
			}
			if _, ok := test.c.Table(); ok != (test.kind == TableConstant) {
				t.Errorf("Table() ok = %t", ok)
			}
			if _, ok := test.c.Int64(); ok != (test.kind == Int64Constant) {
				t.Errorf("Int64() ok = %t", ok)
			}
			if _, ok := test.c.Uint64(); ok != (test.kind == Uint64Constant) {
				t.Errorf("Uint64() ok = %t", ok)
			}
			if _, ok := test.c.Complex128(); ok != (test.kind == ComplexConstant) {
				t.Errorf("Complex128() ok = %t", ok)
			}
			if _, ok := test.c.StringValue(); ok != (test.kind == StringConstant) {
				t.Errorf("StringValue() ok = %t", ok)
			}
		})
	}
}

func TestConstantChildRoundTrip(t *testing.T) {
	child := &Prototype{NumParams: 3}
	c := ChildConstantValue(child)
	got, ok := c.Child()
	if !ok {
		t.Fatal("Child() ok = false, want true")
	}
	if got != child {
		t.Errorf("Child() = %p, want %p", got, child)
	}
}
