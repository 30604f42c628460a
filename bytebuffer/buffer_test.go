// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package bytebuffer

import (
	"testing"
)

func TestReadWriteByte(t *testing.T) {
	buf := New(nil)
	buf.WriteByte(0x01)
	buf.WriteByte(0x10)
	buf.WriteByte(0x80)
	got, err := buf.ReadBytes(3)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x01, 0x10, 0x80}
	if string(got) != string(want) {
		t.Errorf("ReadBytes(3) = %x; want %x", got, want)
	}
}

func TestReadOutOfRange(t *testing.T) {
	buf := New([]byte{0x01})
	if _, err := buf.ReadBytes(2); err != ErrOutOfRange {
		t.Errorf("ReadBytes(2) error = %v; want %v", err, ErrOutOfRange)
	}
}

func TestIndependentCursors(t *testing.T) {
	buf := New(nil)
	buf.WriteUint32(400)
	if buf.ReadIndex() != 0 {
		t.Errorf("ReadIndex() = %d after write; want 0", buf.ReadIndex())
	}
	v, err := buf.ReadUint32()
	if err != nil {
		t.Fatal(err)
	}
	if v != 400 {
		t.Errorf("ReadUint32() = %d; want 400", v)
	}
}

func TestULEB128(t *testing.T) {
	tests := []struct {
		val  uint32
		want []byte
	}{
		{0, []byte{0x00}},
		{400, []byte{0x90, 0x03}},
		{51877, []byte{0xa5, 0x95, 0x03}},
	}
	for _, test := range tests {
		buf := New(nil)
		buf.WriteULEB128(test.val)
		if got := buf.Bytes(); string(got) != string(test.want) {
			t.Errorf("WriteULEB128(%d) = %x; want %x", test.val, got, test.want)
		}

		got, err := buf.ReadULEB128()
		if err != nil {
			t.Fatal(err)
		}
		if got != test.val {
			t.Errorf("ReadULEB128() round trip of %d = %d", test.val, got)
		}
	}
}

func TestULEB128_33(t *testing.T) {
	buf := New(nil)
	buf.WriteULEB128_33(200, false)
	want := []byte{0x90, 0x03}
	if got := buf.Bytes(); string(got) != string(want) {
		t.Errorf("WriteULEB128_33(200, false) = %x; want %x", got, want)
	}

	val, tag, err := buf.ReadULEB128_33()
	if err != nil {
		t.Fatal(err)
	}
	if val != 200 || tag {
		t.Errorf("ReadULEB128_33() = (%d, %v); want (200, false)", val, tag)
	}
}

func TestULEB128_33RoundTrip(t *testing.T) {
	for _, val := range []uint32{0, 1, 200, 1 << 20, 1<<32 - 1} {
		for _, tag := range []bool{false, true} {
			buf := New(nil)
			buf.WriteULEB128_33(val, tag)
			gotVal, gotTag, err := buf.ReadULEB128_33()
			if err != nil {
				t.Fatal(err)
			}
			if gotVal != val || gotTag != tag {
				t.Errorf("round trip of (%d, %v) = (%d, %v)", val, tag, gotVal, gotTag)
			}
		}
	}
}

func TestWriteBuffer(t *testing.T) {
	a := New([]byte{1, 2, 3})
	b := New(nil)
	b.WriteBuffer(a)
	if got := b.Bytes(); string(got) != "\x01\x02\x03" {
		t.Errorf("WriteBuffer result = %x; want 010203", got)
	}
}
