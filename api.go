package main

import (
	"io"

	"github.com/jcorbin/avm/internal/ast"
	"github.com/jcorbin/avm/internal/parser"
	"github.com/jcorbin/avm/internal/scanner"
	"github.com/jcorbin/avm/internal/token"
)

// New creates a VM with an empty stack.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// WithOutput sets where dump and print write; the default discards.
func WithOutput(w io.Writer) VMOption { return withOutput(w) }

// WithTee copies all output into w as well.
func WithTee(w io.Writer) VMOption { return withTee(w) }

// WithLogf enables trace logging through logfn.
func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }

// Compile scans and parses src, whose first line is numbered line. When any
// diagnostic is recorded, a SourceError is returned along with the partial
// program, which must not be executed.
func (vm *VM) Compile(name string, line int, src []byte) (*ast.Program, error) {
	var errs token.ErrorList
	toks := scanner.New(src, &errs).WithLine(line).Scan()
	if vm.logfn != nil {
		for _, tok := range toks {
			vm.logf("<", "scan %v", tok)
		}
	}
	prog := parser.Parse(toks, &errs)
	if errs.HadError() {
		return prog, SourceError{Name: name, Errors: errs}
	}
	return prog, nil
}

// Interpret drains prog, evaluating each instruction until the program is
// exhausted, an exit instruction halts the VM, or an instruction fails.
// Output is flushed before returning.
func (vm *VM) Interpret(prog *ast.Program) (rerr error) {
	defer func() {
		if err := vm.flush(); rerr == nil {
			rerr = err
		}
	}()
	for in, ok := prog.Next(); ok; in, ok = prog.Next() {
		halted, err := vm.Evaluate(in)
		if err != nil {
			return err
		}
		if halted {
			break
		}
	}
	return nil
}

// Run compiles and executes the whole of src. Nothing is executed if src has
// any lexical or syntax error.
func (vm *VM) Run(name string, src []byte) error {
	prog, err := vm.Compile(name, 1, src)
	if err != nil {
		return err
	}
	return vm.Interpret(prog)
}

// Close flushes any buffered output.
func (vm *VM) Close() error { return vm.flush() }

// Dump writes a description of the VM state and stack to w.
func (vm *VM) Dump(w io.Writer) {
	vmDumper{vm: vm, out: w}.dump()
}
