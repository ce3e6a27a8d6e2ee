package main

import (
	"fmt"
	"io"
	"strings"
)

type machineDumper struct {
	m   *Machine
	out io.Writer

	withCommands bool
}

func (dump machineDumper) dump() {
	fmt.Fprintf(dump.out, "# Machine Dump\n")
	dump.dumpStack()
	if dump.withCommands {
		dump.dumpCommands()
	}
}

func (dump machineDumper) dumpStack() {
	st := dump.m.stack
	fmt.Fprintf(dump.out, "  depth: %v\n", len(st))
	if len(st) == 0 {
		return
	}
	parts := make([]string, len(st))
	for i, val := range st {
		parts[i] = formatNumber(val)
	}
	fmt.Fprintf(dump.out, "  stack: [%v]\n", strings.Join(parts, " "))
}

func (dump machineDumper) dumpCommands() {
	fmt.Fprintf(dump.out, "  commands: %v\n", dump.m.ops.Len())
	for _, name := range dump.m.ops.Names() {
		op, _ := dump.m.ops.Lookup(name)
		fmt.Fprintf(dump.out, "    %-5v %v\n", name, op.Arity)
	}
}
