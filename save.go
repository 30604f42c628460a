// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package ljbc

import (
	"fmt"
	"math"

	"dislua.dev/ljbc/bytebuffer"
)

// MarshalBinary encodes d as a complete LuaJIT bytecode dump.
func (d *Dump) MarshalBinary() ([]byte, error) {
	buf := bytebuffer.New(nil)
	buf.WriteBytes(magic[:])
	buf.WriteByte(d.Version)

	var flags DumpFlags
	if d.BigEndian {
		flags |= DumpBigEndian
	}
	if d.StripDebug {
		flags |= DumpStripDebug
	}
	if d.FFI {
		flags |= DumpFFI
	}
	if d.FR2 {
		flags |= DumpFR2
	}
	buf.WriteULEB128(uint32(flags))

	if !d.StripDebug {
		buf.WriteULEB128(uint32(len(d.DebugName)))
		buf.WriteBytes([]byte(d.DebugName))
	}

	for i, p := range d.Protos {
		body := bytebuffer.New(nil)
		if err := writePrototype(body, p, !d.StripDebug); err != nil {
			return nil, fmt.Errorf("prototype %d: %w", i, err)
		}
		buf.WriteULEB128(uint32(body.Size()))
		buf.WriteBuffer(body)
	}
	buf.WriteULEB128(0)

	return buf.Bytes(), nil
}

func writePrototype(buf *bytebuffer.Buffer, p *Prototype, hasDebugInfo bool) error {
	buf.WriteByte(byte(p.Flags))
	buf.WriteByte(p.NumParams)
	buf.WriteByte(p.FrameSize)
	buf.WriteByte(byte(len(p.Uv)))
	buf.WriteULEB128(uint32(len(p.Kgc)))
	buf.WriteULEB128(uint32(len(p.Knum)))
	buf.WriteULEB128(uint32(len(p.Ins)))

	var dbg *bytebuffer.Buffer
	if hasDebugInfo {
		if len(p.LineInfo) != len(p.Ins) {
			return fmt.Errorf("%d line numbers for %d instructions", len(p.LineInfo), len(p.Ins))
		}
		if len(p.UvNames) != len(p.Uv) {
			return fmt.Errorf("%d upvalue names for %d upvalues", len(p.UvNames), len(p.Uv))
		}
		dbg = bytebuffer.New(nil)
		writeDebugInfo(dbg, p)
		buf.WriteULEB128(uint32(dbg.Size()))
		if dbg.Size() != 0 {
			buf.WriteULEB128(p.FirstLine)
			buf.WriteULEB128(p.NumLine)
		}
	}

	for _, ins := range p.Ins {
		buf.WriteUint32(uint32(ins))
	}
	for _, uv := range p.Uv {
		buf.WriteUint16(uv)
	}
	for _, k := range p.Kgc {
		if err := writeConstant(buf, k); err != nil {
			return err
		}
	}
	for _, n := range p.Knum {
		writeNumericConstant(buf, n)
	}
	if dbg != nil {
		buf.WriteBuffer(dbg)
	}
	return nil
}

func writeDebugInfo(buf *bytebuffer.Buffer, p *Prototype) {
	width := lineInfoWidth(p.NumLine)
	for _, line := range p.LineInfo {
		rel := line - p.FirstLine
		switch width {
		case 1:
			buf.WriteByte(byte(rel))
		case 2:
			buf.WriteUint16(uint16(rel))
		default:
			buf.WriteUint32(rel)
		}
	}

	for _, name := range p.UvNames {
		buf.WriteBytes([]byte(name))
		buf.WriteByte(0)
	}

	lastOffset := uint32(0)
	for _, v := range p.VarNames {
		if v.Kind == VarnameNamed {
			buf.WriteBytes([]byte(v.Name))
			buf.WriteByte(0)
		} else {
			buf.WriteByte(byte(v.Kind))
		}
		buf.WriteULEB128(v.Start - lastOffset)
		lastOffset = v.Start
		buf.WriteULEB128(v.End - v.Start)
	}
	buf.WriteByte(0)
}

func writeRaw64(buf *bytebuffer.Buffer, bits uint64) {
	buf.WriteULEB128(uint32(bits))
	buf.WriteULEB128(uint32(bits >> 32))
}

func writeConstant(buf *bytebuffer.Buffer, c Constant) error {
	switch c.Kind() {
	case ChildConstant:
		buf.WriteULEB128(0)
	case TableConstant:
		buf.WriteULEB128(1)
		t, _ := c.Table()
		writeTable(buf, t)
	case Int64Constant:
		buf.WriteULEB128(2)
		i, _ := c.Int64()
		writeRaw64(buf, uint64(i))
	case Uint64Constant:
		buf.WriteULEB128(3)
		u, _ := c.Uint64()
		writeRaw64(buf, u)
	case ComplexConstant:
		buf.WriteULEB128(4)
		z, _ := c.Complex128()
		writeRaw64(buf, math.Float64bits(real(z)))
		writeRaw64(buf, math.Float64bits(imag(z)))
	case StringConstant:
		s, _ := c.StringValue()
		buf.WriteULEB128(uint32(5 + len(s)))
		buf.WriteBytes([]byte(s))
	default:
		panic(fmt.Sprintf("ljbc: constant has invalid kind %d", c.Kind()))
	}
	return nil
}

// almostEqualULP reports whether a and b differ by no more than maxULPs
// units in the last place, treating their IEEE 754 bit patterns as an
// ordered sequence of integers.
func almostEqualULP(a, b float64, maxULPs int64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	ai := orderedBits(a)
	bi := orderedBits(b)
	diff := ai - bi
	if diff < 0 {
		diff = -diff
	}
	return diff <= maxULPs
}

func orderedBits(f float64) int64 {
	bits := int64(math.Float64bits(f))
	if bits < 0 {
		return math.MinInt64 - bits
	}
	return bits
}

func writeNumericConstant(buf *bytebuffer.Buffer, f float64) {
	i32 := int32(f)
	sval := float64(i32)
	if f == sval {
		buf.WriteULEB128_33(uint32(i32), false)
		return
	}
	bits := math.Float64bits(f)
	buf.WriteULEB128_33(uint32(bits), true)
	buf.WriteULEB128(uint32(bits >> 32))
}

func isArrayIndex(k TableValue, arrayLen int) bool {
	i, ok := k.Int32()
	return ok && i >= 0 && int(i) < arrayLen
}

func writeTable(buf *bytebuffer.Buffer, t *Table) {
	arrayLen := t.arrayPrefixLen()
	buf.WriteULEB128(uint32(arrayLen))
	buf.WriteULEB128(uint32(t.Len() - arrayLen))
	for i := 0; i < arrayLen; i++ {
		v, _ := t.Get(IntTableValue(int32(i)))
		writeTableValue(buf, v)
	}
	for k, v := range t.All {
		if isArrayIndex(k, arrayLen) {
			continue
		}
		writeTableValue(buf, k)
		writeTableValue(buf, v)
	}
}

func writeTableValue(buf *bytebuffer.Buffer, v TableValue) {
	switch v.t {
	case tableValueNil:
		buf.WriteULEB128(0)
	case tableValueFalse:
		buf.WriteULEB128(1)
	case tableValueTrue:
		buf.WriteULEB128(2)
	case tableValueInt:
		i, _ := v.Int32()
		buf.WriteULEB128(3)
		buf.WriteULEB128(uint32(i))
	case tableValueFloat:
		f, _ := v.Float64()
		buf.WriteULEB128(4)
		writeRaw64(buf, math.Float64bits(f))
	default:
		s, _ := v.String()
		buf.WriteULEB128(uint32(5 + len(s)))
		buf.WriteBytes([]byte(s))
	}
}
