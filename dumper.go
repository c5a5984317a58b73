package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/avm/internal/operand"
)

type vmDumper struct {
	vm  *VM
	out io.Writer
}

// dump writes a full description of the VM state, for debugging.
func (dump vmDumper) dump() {
	state := "running"
	if dump.vm.halted {
		state = "halted"
	}
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  state: %v\n", state)
	fmt.Fprintf(dump.out, "  depth: %v\n", len(dump.vm.stack))
	for i := len(dump.vm.stack) - 1; i >= 0; i-- {
		o := dump.vm.stack[i]
		fmt.Fprintf(dump.out, "  @%v %v %v\n", i, o.Type(), o)
	}
}

// dumpStack writes the display string of each operand, one per line, from the
// top of the stack down; this is the output of the dump instruction.
func (dump vmDumper) dumpStack() error {
	for i := len(dump.vm.stack) - 1; i >= 0; i-- {
		if _, err := fmt.Fprintln(dump.out, dump.vm.stack[i].String()); err != nil {
			return err
		}
	}
	return nil
}

func formatStack(stack []operand.Operand) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, o := range stack {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(o.GoString())
	}
	sb.WriteByte(']')
	return sb.String()
}
