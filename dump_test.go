// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package ljbc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var dumpDiffOptions = cmp.Options{
	cmp.AllowUnexported(Constant{}, TableValue{}, Table{}),
	cmpopts.EquateEmpty(),
}

func leafPrototype() *Prototype {
	return &Prototype{
		Flags:     ProtoVarargs,
		NumParams: 1,
		FrameSize: 4,
		Ins: []Instruction{
			NewADInstruction(0x2b, 0, 0), // RET0
		},
		Kgc: []Constant{
			StringConstantValue("leaf"),
			Int64ConstantValue(-1),
			Uint64ConstantValue(1 << 40),
			ComplexConstantValue(complex(1.5, -2.5)),
		},
		Knum: []float64{1, 3.25, -17},
	}
}

func leafPrototypeWithDebug() *Prototype {
	p := leafPrototype()
	p.FirstLine = 10
	p.NumLine = 5
	p.LineInfo = []uint32{10}
	p.UvNames = nil
	p.VarNames = []Varname{
		NamedVarname("x", 0, 10),
		NamedVarname("y", 2, 8),
	}
	return p
}

func parentPrototype(child *Prototype, withDebug bool) *Prototype {
	tab := NewTable()
	tab.Set(IntTableValue(0), StringTableValue("a"))
	tab.Set(IntTableValue(1), FloatTableValue(2.5))
	tab.Set(StringTableValue("k"), BoolTableValue(true))

	p := &Prototype{
		Flags:     ProtoChild,
		NumParams: 0,
		FrameSize: 8,
		Ins: []Instruction{
			NewABCInstruction(0x01, 0, 0, 1),
			NewADInstruction(0x2c, 0, 0), // RET1
		},
		Uv: []uint16{0x8000},
		Kgc: []Constant{
			TableConstantValue(tab),
			ChildConstantValue(child),
		},
		Knum: []float64{0},
	}
	if withDebug {
		p.FirstLine = 1
		p.NumLine = 20
		p.LineInfo = []uint32{1, 2}
		p.UvNames = []string{"up"}
		p.VarNames = []Varname{NamedVarname("y", 0, 2)}
	}
	return p
}

func buildDump(stripDebug bool) *Dump {
	child := leafPrototype()
	parent := parentPrototype(child, !stripDebug)
	if !stripDebug {
		child = leafPrototypeWithDebug()
		parent = parentPrototype(child, true)
	}
	return &Dump{
		Version:    2,
		StripDebug: stripDebug,
		DebugName:  debugNameFor(stripDebug),
		Protos:     []*Prototype{child, parent},
	}
}

func debugNameFor(stripDebug bool) string {
	if stripDebug {
		return ""
	}
	return "@test.lua"
}

func TestDumpRoundTrip(t *testing.T) {
	for _, stripDebug := range []bool{false, true} {
		for _, version := range []uint8{1, 2} {
			t.Run(nameForCase(stripDebug, version), func(t *testing.T) {
				want := buildDump(stripDebug)
				want.Version = version

				data, err := want.MarshalBinary()
				if err != nil {
					t.Fatalf("MarshalBinary: %v", err)
				}

				got := new(Dump)
				if err := got.UnmarshalBinary(data); err != nil {
					t.Fatalf("UnmarshalBinary: %v", err)
				}
				if diff := cmp.Diff(want, got, dumpDiffOptions); diff != "" {
					t.Errorf("round trip mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func nameForCase(stripDebug bool, version uint8) string {
	s := "debug"
	if stripDebug {
		s = "stripped"
	}
	return s + "-v" + string(rune('0'+version))
}

func TestUnmarshalBinaryInvalidHeader(t *testing.T) {
	d := new(Dump)
	err := d.UnmarshalBinary([]byte{0, 0, 0})
	assertErrorKind(t, err, InvalidHeader)
}

func TestUnmarshalBinaryUnknownVersion(t *testing.T) {
	d := new(Dump)
	err := d.UnmarshalBinary([]byte{0x1b, 'L', 'J', 9, 0, 0})
	assertErrorKind(t, err, UnknownVersion)
}

func TestUnmarshalBinaryUnknownDumpFlags(t *testing.T) {
	d := new(Dump)
	err := d.UnmarshalBinary([]byte{0x1b, 'L', 'J', 2, 0x40})
	assertErrorKind(t, err, UnknownDumpFlags)
}

func TestUnmarshalBinaryTrailingBytes(t *testing.T) {
	want := buildDump(true)
	data, err := want.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	data = append(data, 0xff)

	d := new(Dump)
	err = d.UnmarshalBinary(data)
	assertErrorKind(t, err, TrailingBytes)
}

func TestUnmarshalBinaryPrototypeSizeZero(t *testing.T) {
	// A non-canonical ULEB128 encoding of zero (0x80 0x00) as a prototype
	// size prefix must be rejected, not mistaken for the single-byte
	// terminator.
	data := []byte{0x1b, 'L', 'J', 2, byte(DumpStripDebug), 0x80, 0x00}

	d := new(Dump)
	err := d.UnmarshalBinary(data)
	assertErrorKind(t, err, PrototypeSizeZero)
}

func TestUnmarshalBinaryStackUnderflow(t *testing.T) {
	// A prototype whose GC constant list claims a child reference, but no
	// prototype has been decoded yet to supply one.
	body := []byte{
		byte(0),    // flags
		byte(0),    // numparams
		byte(2),    // framesize
		byte(0),    // numuv
		byte(1),    // sizekgc
		byte(0),    // sizeknum
		byte(0),    // sizeins
		byte(0x00), // kgc[0] tag = child
	}
	data := []byte{0x1b, 'L', 'J', 2, byte(DumpStripDebug)}
	data = append(data, byte(len(body)))
	data = append(data, body...)
	data = append(data, 0) // terminator

	d := new(Dump)
	err := d.UnmarshalBinary(data)
	assertErrorKind(t, err, StackUnderflow)
}

func assertErrorKind(t *testing.T, err error, want Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("err = nil, want Kind %v", want)
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("err = %v (%T), want *Error", err, err)
	}
	if e.Kind != want {
		t.Errorf("err.Kind = %v, want %v", e.Kind, want)
	}
}

func FuzzDumpMarshalBinary(f *testing.F) {
	for _, stripDebug := range []bool{false, true} {
		d := buildDump(stripDebug)
		chunk, err := d.MarshalBinary()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(chunk)
	}

	f.Fuzz(func(t *testing.T, chunk []byte) {
		want := new(Dump)
		if err := want.UnmarshalBinary(chunk); err != nil {
			t.Skip(err)
		}
		data, err := want.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}
		got := new(Dump)
		if err := got.UnmarshalBinary(data); err != nil {
			t.Error(err)
		}
		if diff := cmp.Diff(want, got, dumpDiffOptions); diff != "" {
			t.Errorf("-want +got:\n%s", diff)
		}
	})
}
