// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package ljbc

import "testing"

func TestWellKnownVarname(t *testing.T) {
	v := WellKnownVarname(VarnameForLimit, 2, 9)
	if v.Kind != VarnameForLimit {
		t.Errorf("Kind = %v, want %v", v.Kind, VarnameForLimit)
	}
	if v.Name != "" {
		t.Errorf("Name = %q, want empty", v.Name)
	}
	if v.Start != 2 || v.End != 9 {
		t.Errorf("Start,End = %d,%d, want 2,9", v.Start, v.End)
	}
}

func TestNamedVarname(t *testing.T) {
	v := NamedVarname("x", 0, 5)
	if v.Kind != VarnameNamed {
		t.Errorf("Kind = %v, want %v", v.Kind, VarnameNamed)
	}
	if v.Name != "x" {
		t.Errorf("Name = %q, want %q", v.Name, "x")
	}
}

func TestVarnameKindString(t *testing.T) {
	tests := map[VarnameKind]string{
		VarnameEnd:       "end",
		VarnameFor:       "for index",
		VarnameForLimit:  "for limit",
		VarnameForStep:   "for step",
		VarnameGenerator: "for generator",
		VarnameState:     "for state",
		VarnameControl:   "for control",
		VarnameNamed:     "named",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
