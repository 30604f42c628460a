// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

// Package ljbccmd provides a Cobra command for inspecting and re-encoding
// LuaJIT bytecode dumps.
package ljbccmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"zombiezen.com/go/log"

	"dislua.dev/ljbc"
	"dislua.dev/ljbc/bcmode"
)

type options struct {
	inputFilename  string
	outputFilename string
	list           int
	parseOnly      bool
	stripDebug     bool
	rawPC          bool
	verbose        bool
}

var initLogOnce sync.Once

func initLogging(verbose bool) {
	initLogOnce.Do(func() {
		minLevel := log.Info
		if verbose {
			minLevel = log.Debug
		}
		log.SetDefault(&log.LevelFilter{
			Min:    minLevel,
			Output: log.New(os.Stderr, "ljbc: ", log.StdFlags, nil),
		})
	})
}

// New returns a new ljbc command.
func New() *cobra.Command {
	c := &cobra.Command{
		Use:                   "ljbc FILE",
		Short:                 "inspect and re-encode LuaJIT bytecode dumps",
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	opts := new(options)
	c.Flags().CountVarP(&opts.list, "list", "l", "produce a listing of the dump's bytecode")
	c.Flags().StringVarP(&opts.outputFilename, "output", "o", "ljbc.out", "re-encode the dump to `filename`")
	c.Flags().BoolVarP(&opts.parseOnly, "parse-only", "p", false, "do not write a re-encoded dump")
	c.Flags().BoolVarP(&opts.stripDebug, "strip-debug", "s", false, "strip debug information when re-encoding")
	c.Flags().BoolVarP(&opts.rawPC, "raw-pc", "0", false, "show literal PC values")
	c.Flags().BoolVar(&opts.verbose, "verbose", false, "show debugging output")
	c.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		initLogging(opts.verbose)
		return nil
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		opts.inputFilename = args[0]
		return run(cmd.Context(), opts)
	}
	return c
}

func run(ctx context.Context, opts *options) error {
	data, err := os.ReadFile(opts.inputFilename)
	if err != nil {
		return err
	}
	log.Debugf(ctx, "read %d bytes from %s", len(data), opts.inputFilename)

	dump := new(ljbc.Dump)
	if err := dump.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("%s: %w", opts.inputFilename, err)
	}
	log.Debugf(ctx, "decoded dump version %d with %d prototype(s)", dump.Version, len(dump.Protos))

	if opts.list > 0 {
		names := make(map[*ljbc.Prototype]string)
		nameFunctions(names, dump.Root())
		pcBase := 0
		if !opts.rawPC {
			pcBase = 1
		}
		if err := printFunction(dump.Root(), dump.Version, names, pcBase, opts.list > 1); err != nil {
			return err
		}
	}

	if opts.parseOnly {
		return nil
	}

	if opts.stripDebug {
		dump.StripDebug = true
	}
	output, err := dump.MarshalBinary()
	if err != nil {
		return fmt.Errorf("re-encode %s: %w", opts.inputFilename, err)
	}
	if err := os.WriteFile(opts.outputFilename, output, 0o666); err != nil {
		return err
	}
	log.Debugf(ctx, "wrote %d bytes to %s", len(output), opts.outputFilename)
	return nil
}

func printFunction(p *ljbc.Prototype, version uint8, names map[*ljbc.Prototype]string, pcBase int, full bool) error {
	plural := func(n int, unit, unitPlural string) string {
		if n == 1 {
			return "1 " + unit
		}
		return fmt.Sprintf("%d %s", n, unitPlural)
	}

	_, err := fmt.Printf(
		"\nfunction <%s> (%s)\n",
		names[p],
		plural(len(p.Ins), "instruction", "instructions"),
	)
	if err != nil {
		return err
	}
	_, err = fmt.Printf(
		"%d params, %s, %s, %s, %s\n",
		p.NumParams,
		plural(int(p.FrameSize), "slot", "slots"),
		plural(len(p.Uv), "upvalue", "upvalues"),
		plural(len(p.Kgc)+len(p.Knum), "constant", "constants"),
		plural(countChildren(p), "function", "functions"),
	)
	if err != nil {
		return err
	}

	table, haveTable := bcmode.ForVersion(version)
	lineBuf := new(bytes.Buffer)
	for pc, ins := range p.Ins {
		lineBuf.Reset()
		fmt.Fprintf(lineBuf, "\t%d\t", pcBase+pc)
		if pc < len(p.LineInfo) {
			fmt.Fprintf(lineBuf, "[%d]\t", p.LineInfo[pc])
		} else {
			lineBuf.WriteString("[-]\t")
		}
		op := ins.OpCode()
		if haveTable && int(op) < len(table) {
			info := table[op]
			fmt.Fprintf(lineBuf, "%-8s %d", info.Name, ins.ArgA())
			if info.B != bcmode.ModeNone {
				fmt.Fprintf(lineBuf, " %d", ins.ArgB())
			}
			if info.C != bcmode.ModeNone {
				if info.B == bcmode.ModeNone {
					fmt.Fprintf(lineBuf, " %d", ins.ArgD())
				} else {
					fmt.Fprintf(lineBuf, " %d", ins.ArgC())
				}
			}
		} else {
			lineBuf.WriteString(ins.String())
		}
		lineBuf.WriteByte('\n')
		if _, err := os.Stdout.Write(lineBuf.Bytes()); err != nil {
			return err
		}
	}

	if full {
		if _, err := fmt.Printf("constants (%d) for %s\n", len(p.Kgc)+len(p.Knum), names[p]); err != nil {
			return err
		}
		for i, k := range p.Kgc {
			if _, err := fmt.Printf("\t%d\t%s\n", i, k); err != nil {
				return err
			}
		}
		for i, n := range p.Knum {
			if _, err := fmt.Printf("\t%d\tN\t%v\n", len(p.Kgc)+i, n); err != nil {
				return err
			}
		}

		if _, err := fmt.Printf("locals (%d) for %s\n", len(p.VarNames), names[p]); err != nil {
			return err
		}
		for i, v := range p.VarNames {
			label := v.Name
			if v.Kind != ljbc.VarnameNamed {
				label = v.Kind.String()
			}
			if _, err := fmt.Printf("\t%d\t%s\t%d\t%d\n", i, label, pcBase+int(v.Start), pcBase+int(v.End)); err != nil {
				return err
			}
		}
	}

	for _, k := range p.Kgc {
		if child, ok := k.Child(); ok {
			if err := printFunction(child, version, names, pcBase, full); err != nil {
				return err
			}
		}
	}
	return nil
}

func countChildren(p *ljbc.Prototype) int {
	n := 0
	for _, k := range p.Kgc {
		if _, ok := k.Child(); ok {
			n++
		}
	}
	return n
}

func nameFunctions(names map[*ljbc.Prototype]string, p *ljbc.Prototype) {
	base := names[p]
	isTop := base == ""
	if isTop {
		base = "main"
		names[p] = base
	}

	i := 0
	for _, k := range p.Kgc {
		child, ok := k.Child()
		if !ok {
			continue
		}
		var name string
		if isTop {
			name = fmt.Sprintf("F[%d]", i)
		} else {
			name = fmt.Sprintf("%s[%d]", base, i)
		}
		names[child] = name
		nameFunctions(names, child)
		i++
	}
}
