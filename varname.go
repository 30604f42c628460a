// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package ljbc

import "strconv"

// VarnameKind identifies a local variable's role, or that it is a named
// source-level variable.
type VarnameKind byte

// Well-known variable roles, as they appear on the wire. Any value greater
// than or equal to [VarnameNamed] is not a role: it is the first byte of an
// inline NUL-terminated name.
const (
	VarnameEnd       VarnameKind = 0
	VarnameFor       VarnameKind = 1 // "(for index)"
	VarnameForLimit  VarnameKind = 2 // "(for limit)"
	VarnameForStep   VarnameKind = 3 // "(for step)"
	VarnameGenerator VarnameKind = 4 // "(for generator)"
	VarnameState     VarnameKind = 5 // "(for state)"
	VarnameControl   VarnameKind = 6 // "(for control)"
	// VarnameNamed marks a Varname whose Name field holds a source-level
	// identifier rather than a well-known role.
	VarnameNamed VarnameKind = 7
)

func (k VarnameKind) String() string {
	switch k {
	case VarnameEnd:
		return "end"
	case VarnameFor:
		return "for index"
	case VarnameForLimit:
		return "for limit"
	case VarnameForStep:
		return "for step"
	case VarnameGenerator:
		return "for generator"
	case VarnameState:
		return "for state"
	case VarnameControl:
		return "for control"
	case VarnameNamed:
		return "named"
	default:
		return "VarnameKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Varname describes the name and live range of a single local variable slot
// in a prototype's debug info.
type Varname struct {
	Kind VarnameKind
	// Name holds the variable's source-level identifier. It is only valid
	// when Kind is [VarnameNamed].
	Name string
	// Start and End are instruction offsets, relative to the prototype's
	// first instruction, over which the variable is live.
	Start uint32
	End   uint32
}

// WellKnownVarname returns a [Varname] with one of the well-known roles
// (everything but [VarnameNamed]).
func WellKnownVarname(kind VarnameKind, start, end uint32) Varname {
	return Varname{Kind: kind, Start: start, End: end}
}

// NamedVarname returns a [Varname] naming a source-level local variable.
func NamedVarname(name string, start, end uint32) Varname {
	return Varname{Kind: VarnameNamed, Name: name, Start: start, End: end}
}
