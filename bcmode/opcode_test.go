// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package bcmode

import "testing"

func TestForVersion(t *testing.T) {
	tests := []struct {
		version uint8
		wantLen int
		wantOK  bool
	}{
		{1, 93, true},
		{2, 97, true},
		{0, 0, false},
		{3, 0, false},
	}
	for _, test := range tests {
		table, ok := ForVersion(test.version)
		if ok != test.wantOK {
			t.Errorf("ForVersion(%d) ok = %t, want %t", test.version, ok, test.wantOK)
			continue
		}
		if ok && len(table) != test.wantLen {
			t.Errorf("len(ForVersion(%d)) = %d, want %d", test.version, len(table), test.wantLen)
		}
	}
}

func TestLookup(t *testing.T) {
	op, ok := Lookup(1, 0)
	if !ok || op.Name != "ISLT" {
		t.Errorf("Lookup(1, 0) = %+v, %t; want ISLT, true", op, ok)
	}

	// ISTYPE only exists in the version 2 table.
	if _, ok := Lookup(1, 16); ok {
		if op, _ := Lookup(1, 16); op.Name == "ISTYPE" {
			t.Errorf("Lookup(1, 16) found ISTYPE, which is version-2-only")
		}
	}
	op, ok = Lookup(2, 16)
	if !ok || op.Name != "ISTYPE" {
		t.Errorf("Lookup(2, 16) = %+v, %t; want ISTYPE, true", op, ok)
	}

	if _, ok := Lookup(1, 255); ok {
		t.Error("Lookup(1, 255) = _, true; want false")
	}
	if _, ok := Lookup(9, 0); ok {
		t.Error("Lookup(9, 0) = _, true; want false")
	}
}

func TestModeString(t *testing.T) {
	if got, want := ModeJump.String(), "jump"; got != want {
		t.Errorf("ModeJump.String() = %q, want %q", got, want)
	}
	if got := Mode(255).String(); got == "" {
		t.Error("Mode(255).String() returned empty string")
	}
}
