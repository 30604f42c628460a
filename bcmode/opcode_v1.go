// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package bcmode

// v1Opcodes is the LuaJIT 2.0 (dump version 1) opcode table.
var v1Opcodes = [...]OpInfo{
	{Name: "ISLT", A: ModeVar, B: ModeNone, C: ModeVar},
	{Name: "ISGE", A: ModeVar, B: ModeNone, C: ModeVar},
	{Name: "ISLE", A: ModeVar, B: ModeNone, C: ModeVar},
	{Name: "ISGT", A: ModeVar, B: ModeNone, C: ModeVar},
	{Name: "ISEQV", A: ModeVar, B: ModeNone, C: ModeVar},
	{Name: "ISNEV", A: ModeVar, B: ModeNone, C: ModeVar},
	{Name: "ISEQS", A: ModeVar, B: ModeNone, C: ModeStr},
	{Name: "ISNES", A: ModeVar, B: ModeNone, C: ModeStr},
	{Name: "ISEQN", A: ModeVar, B: ModeNone, C: ModeNum},
	{Name: "ISNEN", A: ModeVar, B: ModeNone, C: ModeNum},
	{Name: "ISEQP", A: ModeVar, B: ModeNone, C: ModePri},
	{Name: "ISNEP", A: ModeVar, B: ModeNone, C: ModePri},
	{Name: "ISTC", A: ModeDst, B: ModeNone, C: ModeVar},
	{Name: "ISFC", A: ModeDst, B: ModeNone, C: ModeVar},
	{Name: "IST", A: ModeNone, B: ModeNone, C: ModeVar},
	{Name: "ISF", A: ModeNone, B: ModeNone, C: ModeVar},
	{Name: "MOV", A: ModeDst, B: ModeNone, C: ModeVar},
	{Name: "NOT", A: ModeDst, B: ModeNone, C: ModeVar},
	{Name: "UNM", A: ModeDst, B: ModeNone, C: ModeVar},
	{Name: "LEN", A: ModeDst, B: ModeNone, C: ModeVar},
	{Name: "ADDVN", A: ModeDst, B: ModeVar, C: ModeNum},
	{Name: "SUBVN", A: ModeDst, B: ModeVar, C: ModeNum},
	{Name: "MULVN", A: ModeDst, B: ModeVar, C: ModeNum},
	{Name: "DIVVN", A: ModeDst, B: ModeVar, C: ModeNum},
	{Name: "MODVN", A: ModeDst, B: ModeVar, C: ModeNum},
	{Name: "ADDNV", A: ModeDst, B: ModeVar, C: ModeNum},
	{Name: "SUBNV", A: ModeDst, B: ModeVar, C: ModeNum},
	{Name: "MULNV", A: ModeDst, B: ModeVar, C: ModeNum},
	{Name: "DIVNV", A: ModeDst, B: ModeVar, C: ModeNum},
	{Name: "MODNV", A: ModeDst, B: ModeVar, C: ModeNum},
	{Name: "ADDVV", A: ModeDst, B: ModeVar, C: ModeVar},
	{Name: "SUBVV", A: ModeDst, B: ModeVar, C: ModeVar},
	{Name: "MULVV", A: ModeDst, B: ModeVar, C: ModeVar},
	{Name: "DIVVV", A: ModeDst, B: ModeVar, C: ModeVar},
	{Name: "MODVV", A: ModeDst, B: ModeVar, C: ModeVar},
	{Name: "POW", A: ModeDst, B: ModeVar, C: ModeVar},
	{Name: "CAT", A: ModeDst, B: ModeRBase, C: ModeRBase},
	{Name: "KSTR", A: ModeDst, B: ModeNone, C: ModeStr},
	{Name: "KCDATA", A: ModeDst, B: ModeNone, C: ModeCData},
	{Name: "KSHORT", A: ModeDst, B: ModeNone, C: ModeLits},
	{Name: "KNUM", A: ModeDst, B: ModeNone, C: ModeNum},
	{Name: "KPRI", A: ModeDst, B: ModeNone, C: ModePri},
	{Name: "KNIL", A: ModeBase, B: ModeNone, C: ModeBase},
	{Name: "UGET", A: ModeDst, B: ModeNone, C: ModeUV},
	{Name: "USETV", A: ModeUV, B: ModeNone, C: ModeVar},
	{Name: "USETS", A: ModeUV, B: ModeNone, C: ModeStr},
	{Name: "USETN", A: ModeUV, B: ModeNone, C: ModeNum},
	{Name: "USETP", A: ModeUV, B: ModeNone, C: ModePri},
	{Name: "UCLO", A: ModeRBase, B: ModeNone, C: ModeJump},
	{Name: "FNEW", A: ModeDst, B: ModeNone, C: ModeFunc},
	{Name: "TNEW", A: ModeDst, B: ModeNone, C: ModeLit},
	{Name: "TDUP", A: ModeDst, B: ModeNone, C: ModeTab},
	{Name: "GGET", A: ModeDst, B: ModeNone, C: ModeStr},
	{Name: "GSET", A: ModeVar, B: ModeNone, C: ModeStr},
	{Name: "TGETV", A: ModeDst, B: ModeVar, C: ModeVar},
	{Name: "TGETS", A: ModeDst, B: ModeVar, C: ModeStr},
	{Name: "TGETB", A: ModeDst, B: ModeVar, C: ModeLit},
	{Name: "TSETV", A: ModeVar, B: ModeVar, C: ModeVar},
	{Name: "TSETS", A: ModeVar, B: ModeVar, C: ModeStr},
	{Name: "TSETB", A: ModeVar, B: ModeVar, C: ModeLit},
	{Name: "TSETM", A: ModeBase, B: ModeNone, C: ModeNum},
	{Name: "CALLM", A: ModeBase, B: ModeLit, C: ModeLit},
	{Name: "CALL", A: ModeBase, B: ModeLit, C: ModeLit},
	{Name: "CALLMT", A: ModeBase, B: ModeNone, C: ModeLit},
	{Name: "CALLT", A: ModeBase, B: ModeNone, C: ModeLit},
	{Name: "ITERC", A: ModeBase, B: ModeLit, C: ModeLit},
	{Name: "ITERN", A: ModeBase, B: ModeLit, C: ModeLit},
	{Name: "VARG", A: ModeBase, B: ModeLit, C: ModeLit},
	{Name: "ISNEXT", A: ModeBase, B: ModeNone, C: ModeJump},
	{Name: "RETM", A: ModeBase, B: ModeNone, C: ModeLit},
	{Name: "RET", A: ModeRBase, B: ModeNone, C: ModeLit},
	{Name: "RET0", A: ModeRBase, B: ModeNone, C: ModeLit},
	{Name: "RET1", A: ModeRBase, B: ModeNone, C: ModeLit},
	{Name: "FORI", A: ModeBase, B: ModeNone, C: ModeJump},
	{Name: "JFORI", A: ModeBase, B: ModeNone, C: ModeJump},
	{Name: "FORL", A: ModeBase, B: ModeNone, C: ModeJump},
	{Name: "IFORL", A: ModeBase, B: ModeNone, C: ModeJump},
	{Name: "JFORL", A: ModeBase, B: ModeNone, C: ModeLit},
	{Name: "ITERL", A: ModeBase, B: ModeNone, C: ModeJump},
	{Name: "IITERL", A: ModeBase, B: ModeNone, C: ModeJump},
	{Name: "JITERL", A: ModeBase, B: ModeNone, C: ModeLit},
	{Name: "LOOP", A: ModeRBase, B: ModeNone, C: ModeJump},
	{Name: "ILOOP", A: ModeRBase, B: ModeNone, C: ModeJump},
	{Name: "JLOOP", A: ModeRBase, B: ModeNone, C: ModeLit},
	{Name: "JMP", A: ModeRBase, B: ModeNone, C: ModeJump},
	{Name: "FUNCF", A: ModeRBase, B: ModeNone, C: ModeNone},
	{Name: "IFUNCF", A: ModeRBase, B: ModeNone, C: ModeNone},
	{Name: "JFUNCF", A: ModeRBase, B: ModeNone, C: ModeLit},
	{Name: "FUNCV", A: ModeRBase, B: ModeNone, C: ModeNone},
	{Name: "IFUNCV", A: ModeRBase, B: ModeNone, C: ModeNone},
	{Name: "JFUNCV", A: ModeRBase, B: ModeNone, C: ModeLit},
	{Name: "FUNCC", A: ModeRBase, B: ModeNone, C: ModeNone},
	{Name: "FUNCCW", A: ModeRBase, B: ModeNone, C: ModeNone},
}
