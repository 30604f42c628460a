// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package ljbc

import "testing"

func TestPrototypeHasDebugInfo(t *testing.T) {
	p := &Prototype{}
	if p.HasDebugInfo() {
		t.Error("HasDebugInfo() = true for empty prototype, want false")
	}
	p.LineInfo = []uint32{1}
	if !p.HasDebugInfo() {
		t.Error("HasDebugInfo() = false with LineInfo set, want true")
	}
}

func TestPrototypeNumUv(t *testing.T) {
	p := &Prototype{Uv: []uint16{1, 2, 3}}
	if got, want := p.NumUv(), 3; got != want {
		t.Errorf("NumUv() = %d, want %d", got, want)
	}
}

func TestPrototypeFlagsHas(t *testing.T) {
	f := ProtoVarargs | ProtoFFI
	if !f.Has(ProtoVarargs) {
		t.Error("Has(ProtoVarargs) = false, want true")
	}
	if f.Has(ProtoNoJIT) {
		t.Error("Has(ProtoNoJIT) = true, want false")
	}
	if !f.Has(ProtoVarargs | ProtoFFI) {
		t.Error("Has(ProtoVarargs|ProtoFFI) = false, want true")
	}
}
