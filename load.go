// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package ljbc

import (
	"bytes"
	"math"

	"dislua.dev/ljbc/bytebuffer"
)

// UnmarshalBinary decodes a complete LuaJIT bytecode dump from data,
// replacing d's contents.
//
// UnmarshalBinary requires data to hold exactly one dump: it is an error for
// any bytes to follow the dump's terminating zero byte.
func (d *Dump) UnmarshalBinary(data []byte) error {
	buf := bytebuffer.New(data)

	got, err := buf.ReadBytes(len(magic))
	if err != nil || !bytes.Equal(got, magic[:]) {
		return newError(InvalidHeader, "header", nil)
	}
	version, err := buf.ReadByte()
	if err != nil {
		return newError(OutOfRange, "header", err)
	}
	if version != 1 && version != 2 {
		return newError(UnknownVersion, "header", nil)
	}
	rawFlags, err := buf.ReadULEB128()
	if err != nil {
		return newError(OutOfRange, "header flags", err)
	}
	flags := DumpFlags(rawFlags)
	known := dumpFlagsKnown
	if version == 1 {
		known &^= DumpFR2
	}
	if flags&^known != 0 {
		return newError(UnknownDumpFlags, "header flags", nil)
	}

	nd := Dump{
		Version:    version,
		BigEndian:  flags&DumpBigEndian != 0,
		FFI:        flags&DumpFFI != 0,
		FR2:        flags&DumpFR2 != 0,
		StripDebug: flags&DumpStripDebug != 0,
	}
	if !nd.StripDebug {
		nameLen, err := buf.ReadULEB128()
		if err != nil {
			return newError(OutOfRange, "chunk name length", err)
		}
		nameBytes, err := buf.ReadBytes(int(nameLen))
		if err != nil {
			return newError(OutOfRange, "chunk name", err)
		}
		nd.DebugName = string(nameBytes)
	}

	var stack []*Prototype
	for i := 0; ; i++ {
		peek, err := buf.PeekByte()
		if err != nil {
			return newError(OutOfRange, "prototype size", err)
		}
		if peek == 0 {
			buf.ReadByte()
			break
		}
		size, err := buf.ReadULEB128()
		if err != nil {
			return newError(OutOfRange, "prototype size", err)
		}
		if size == 0 {
			return newError(PrototypeSizeZero, "prototype", nil)
		}
		start := buf.ReadIndex()
		p, err := readPrototype(buf, &stack, !nd.StripDebug)
		if err != nil {
			return err
		}
		if buf.ReadIndex()-start != int(size) {
			return newError(PrototypeSizeMismatch, "prototype", nil)
		}
		stack = append(stack, p)
		nd.Protos = append(nd.Protos, p)
	}
	if len(stack) != 1 {
		return newError(StackLeftover, "dump", nil)
	}
	if buf.ReadIndex() != buf.Size() {
		return newError(TrailingBytes, "dump", nil)
	}

	*d = nd
	return nil
}

// popChild removes and returns the most recently completed prototype from
// stack, which mirrors the LIFO order in which child references appear on
// the wire relative to the prototypes they name.
func popChild(stack *[]*Prototype) (*Prototype, error) {
	n := len(*stack)
	if n == 0 {
		return nil, newError(StackUnderflow, "child constant", nil)
	}
	p := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	return p, nil
}

func readPrototype(buf *bytebuffer.Buffer, stack *[]*Prototype, hasDebugInfo bool) (*Prototype, error) {
	flagsByte, err := buf.ReadByte()
	if err != nil {
		return nil, newError(OutOfRange, "prototype flags", err)
	}
	flags := PrototypeFlags(flagsByte)
	if flags&^protoFlagsKnown != 0 {
		return nil, newError(UnknownPrototypeFlags, "prototype", nil)
	}
	numParams, err := buf.ReadByte()
	if err != nil {
		return nil, newError(OutOfRange, "numparams", err)
	}
	frameSize, err := buf.ReadByte()
	if err != nil {
		return nil, newError(OutOfRange, "framesize", err)
	}
	numUv, err := buf.ReadByte()
	if err != nil {
		return nil, newError(OutOfRange, "numuv", err)
	}
	sizeKgc, err := buf.ReadULEB128()
	if err != nil {
		return nil, newError(OutOfRange, "sizekgc", err)
	}
	sizeKnum, err := buf.ReadULEB128()
	if err != nil {
		return nil, newError(OutOfRange, "sizeknum", err)
	}
	sizeIns, err := buf.ReadULEB128()
	if err != nil {
		return nil, newError(OutOfRange, "sizeins", err)
	}

	var sizeDbg, firstLine, numLine uint32
	if hasDebugInfo {
		sizeDbg, err = buf.ReadULEB128()
		if err != nil {
			return nil, newError(OutOfRange, "sizedbg", err)
		}
		if sizeDbg != 0 {
			firstLine, err = buf.ReadULEB128()
			if err != nil {
				return nil, newError(OutOfRange, "firstline", err)
			}
			numLine, err = buf.ReadULEB128()
			if err != nil {
				return nil, newError(OutOfRange, "numline", err)
			}
		}
	}

	ins := make([]Instruction, sizeIns)
	for i := range ins {
		w, err := buf.ReadUint32()
		if err != nil {
			return nil, newError(OutOfRange, "instruction", err)
		}
		ins[i] = Instruction(w)
	}
	uv := make([]uint16, numUv)
	for i := range uv {
		uv[i], err = buf.ReadUint16()
		if err != nil {
			return nil, newError(OutOfRange, "upvalue", err)
		}
	}
	kgc := make([]Constant, sizeKgc)
	for i := range kgc {
		kgc[i], err = readConstant(buf, stack)
		if err != nil {
			return nil, err
		}
	}
	knum := make([]float64, sizeKnum)
	for i := range knum {
		knum[i], err = readNumericConstant(buf)
		if err != nil {
			return nil, err
		}
	}

	p := &Prototype{
		Flags:     flags,
		NumParams: numParams,
		FrameSize: frameSize,
		Ins:       ins,
		Uv:        uv,
		Kgc:       kgc,
		Knum:      knum,
	}
	if hasDebugInfo && sizeDbg != 0 {
		p.FirstLine = firstLine
		p.NumLine = numLine
		if err := readDebugInfo(buf, p, sizeDbg); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func lineInfoWidth(numLine uint32) int {
	switch {
	case numLine >= 1<<16:
		return 4
	case numLine >= 1<<8:
		return 2
	default:
		return 1
	}
}

func readDebugInfo(buf *bytebuffer.Buffer, p *Prototype, sizeDbg uint32) error {
	start := buf.ReadIndex()

	width := lineInfoWidth(p.NumLine)
	lineInfo := make([]uint32, len(p.Ins))
	for i := range lineInfo {
		var rel uint32
		var err error
		switch width {
		case 1:
			var b byte
			b, err = buf.ReadByte()
			rel = uint32(b)
		case 2:
			var v uint16
			v, err = buf.ReadUint16()
			rel = uint32(v)
		default:
			rel, err = buf.ReadUint32()
		}
		if err != nil {
			return newError(OutOfRange, "lineinfo", err)
		}
		lineInfo[i] = p.FirstLine + rel
	}
	p.LineInfo = lineInfo

	uvNames := make([]string, len(p.Uv))
	for i := range uvNames {
		s, err := readCString(buf)
		if err != nil {
			return newError(OutOfRange, "uvname", err)
		}
		uvNames[i] = s
	}
	p.UvNames = uvNames

	var varNames []Varname
	lastOffset := uint32(0)
	for {
		kindByte, err := buf.ReadByte()
		if err != nil {
			return newError(OutOfRange, "varname", err)
		}
		if kindByte == 0 {
			break
		}
		var v Varname
		if kindByte < byte(VarnameNamed) {
			v.Kind = VarnameKind(kindByte)
		} else {
			name, err := readCStringWithFirstByte(buf, kindByte)
			if err != nil {
				return newError(OutOfRange, "varname", err)
			}
			v = NamedVarname(name, 0, 0)
		}
		startDelta, err := buf.ReadULEB128()
		if err != nil {
			return newError(OutOfRange, "varname start", err)
		}
		lastOffset += startDelta
		v.Start = lastOffset
		endDelta, err := buf.ReadULEB128()
		if err != nil {
			return newError(OutOfRange, "varname end", err)
		}
		v.End = v.Start + endDelta
		varNames = append(varNames, v)
	}
	p.VarNames = varNames

	if buf.ReadIndex()-start != int(sizeDbg) {
		return newError(DebugSizeMismatch, "prototype debug info", nil)
	}
	return nil
}

func readCString(buf *bytebuffer.Buffer) (string, error) {
	var s []byte
	for {
		b, err := buf.ReadByte()
		if err != nil {
			return "", err
		}
		if b == 0 {
			break
		}
		s = append(s, b)
	}
	return string(s), nil
}

func readCStringWithFirstByte(buf *bytebuffer.Buffer, first byte) (string, error) {
	s := []byte{first}
	for {
		b, err := buf.ReadByte()
		if err != nil {
			return "", err
		}
		if b == 0 {
			break
		}
		s = append(s, b)
	}
	return string(s), nil
}

func readRaw64(buf *bytebuffer.Buffer) (uint64, error) {
	lo, err := buf.ReadULEB128()
	if err != nil {
		return 0, err
	}
	hi, err := buf.ReadULEB128()
	if err != nil {
		return 0, err
	}
	return uint64(lo) | uint64(hi)<<32, nil
}

func readConstant(buf *bytebuffer.Buffer, stack *[]*Prototype) (Constant, error) {
	tag, err := buf.ReadULEB128()
	if err != nil {
		return Constant{}, newError(OutOfRange, "gc constant tag", err)
	}
	switch tag {
	case 0:
		child, err := popChild(stack)
		if err != nil {
			return Constant{}, err
		}
		return ChildConstantValue(child), nil
	case 1:
		t, err := readTable(buf)
		if err != nil {
			return Constant{}, err
		}
		return TableConstantValue(t), nil
	case 2:
		bits, err := readRaw64(buf)
		if err != nil {
			return Constant{}, newError(OutOfRange, "int64 constant", err)
		}
		return Int64ConstantValue(int64(bits)), nil
	case 3:
		bits, err := readRaw64(buf)
		if err != nil {
			return Constant{}, newError(OutOfRange, "uint64 constant", err)
		}
		return Uint64ConstantValue(bits), nil
	case 4:
		reBits, err := readRaw64(buf)
		if err != nil {
			return Constant{}, newError(OutOfRange, "complex constant", err)
		}
		imBits, err := readRaw64(buf)
		if err != nil {
			return Constant{}, newError(OutOfRange, "complex constant", err)
		}
		z := complex(math.Float64frombits(reBits), math.Float64frombits(imBits))
		return ComplexConstantValue(z), nil
	default:
		n := tag - 5
		data, err := buf.ReadBytes(int(n))
		if err != nil {
			return Constant{}, newError(OutOfRange, "string constant", err)
		}
		return StringConstantValue(string(data)), nil
	}
}

func readNumericConstant(buf *bytebuffer.Buffer) (float64, error) {
	val, isFloat, err := buf.ReadULEB128_33()
	if err != nil {
		return 0, newError(OutOfRange, "number constant", err)
	}
	if !isFloat {
		return float64(int32(val)), nil
	}
	hi, err := buf.ReadULEB128()
	if err != nil {
		return 0, newError(OutOfRange, "number constant", err)
	}
	bits := uint64(val) | uint64(hi)<<32
	return math.Float64frombits(bits), nil
}

func readTable(buf *bytebuffer.Buffer) (*Table, error) {
	narray, err := buf.ReadULEB128()
	if err != nil {
		return nil, newError(OutOfRange, "table narray", err)
	}
	nhash, err := buf.ReadULEB128()
	if err != nil {
		return nil, newError(OutOfRange, "table nhash", err)
	}
	t := NewTable()
	for i := uint32(0); i < narray; i++ {
		v, err := readTableValue(buf)
		if err != nil {
			return nil, err
		}
		t.Set(IntTableValue(int32(i)), v)
	}
	for i := uint32(0); i < nhash; i++ {
		k, err := readTableValue(buf)
		if err != nil {
			return nil, err
		}
		v, err := readTableValue(buf)
		if err != nil {
			return nil, err
		}
		t.Set(k, v)
	}
	return t, nil
}

func readTableValue(buf *bytebuffer.Buffer) (TableValue, error) {
	tag, err := buf.ReadULEB128()
	if err != nil {
		return TableValue{}, newError(OutOfRange, "table value tag", err)
	}
	switch tag {
	case 0:
		return NilTableValue(), nil
	case 1:
		return BoolTableValue(false), nil
	case 2:
		return BoolTableValue(true), nil
	case 3:
		v, err := buf.ReadULEB128()
		if err != nil {
			return TableValue{}, newError(OutOfRange, "table integer value", err)
		}
		return IntTableValue(int32(v)), nil
	case 4:
		bits, err := readRaw64(buf)
		if err != nil {
			return TableValue{}, newError(OutOfRange, "table number value", err)
		}
		return FloatTableValue(math.Float64frombits(bits)), nil
	default:
		n := tag - 5
		data, err := buf.ReadBytes(int(n))
		if err != nil {
			return TableValue{}, newError(OutOfRange, "table string value", err)
		}
		return StringTableValue(string(data)), nil
	}
}
