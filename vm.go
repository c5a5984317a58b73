package main

import (
	"fmt"

	"github.com/jcorbin/avm/internal/ast"
	"github.com/jcorbin/avm/internal/operand"
	"github.com/jcorbin/avm/internal/panicerr"
)

// VM interprets instructions against an operand stack. It is Running until an
// exit instruction halts it; once halted, Evaluate does nothing.
type VM struct {
	core

	stack  []operand.Operand
	halted bool
}

// Evaluate executes a single instruction, returning whether the VM is now
// halted. A failing arithmetic instruction has already consumed its operands;
// any other failure leaves the stack as it was before the instruction.
func (vm *VM) Evaluate(in ast.Instruction) (halted bool, err error) {
	if vm.halted {
		return true, nil
	}
	if err := panicerr.Recover("VM", func() error {
		vm.step(in)
		return nil
	}); err != nil {
		return vm.halted, RuntimeError{Instr: in, Err: err}
	}
	return vm.halted, nil
}

// Halted returns true once an exit instruction has been evaluated.
func (vm *VM) Halted() bool { return vm.halted }

// Stack returns a copy of the operand stack, bottom first.
func (vm *VM) Stack() []operand.Operand {
	return append([]operand.Operand(nil), vm.stack...)
}

func (vm *VM) step(in ast.Instruction) {
	op := in.Op
	if int(op) >= len(vmOpTable) || vmOpTable[op] == nil {
		vm.halt(opError(op))
	}
	if vm.logfn != nil {
		vm.logf(">", "exec %v @line %v -- s:%v", in, in.Line, formatStack(vm.stack))
	}
	vmOpTable[op](vm, in)
}

var vmOpTable = [...]func(vm *VM, in ast.Instruction){
	ast.Push:   (*VM).execPush,
	ast.Pop:    (*VM).execPop,
	ast.Dump:   (*VM).execDump,
	ast.Assert: (*VM).execAssert,
	ast.Add:    arith(operand.OpAdd),
	ast.Sub:    arith(operand.OpSub),
	ast.Mul:    arith(operand.OpMul),
	ast.Div:    arith(operand.OpDiv),
	ast.Mod:    arith(operand.OpMod),
	ast.Print:  (*VM).execPrint,
	ast.Exit:   (*VM).execExit,
}

func (vm *VM) execPush(in ast.Instruction) {
	vm.push(vm.create(in.Value))
}

func (vm *VM) execPop(in ast.Instruction) {
	vm.pop()
}

func (vm *VM) execDump(in ast.Instruction) {
	vm.haltif(vmDumper{vm: vm, out: vm.out}.dumpStack())
}

// execAssert requires the top operand to have exactly the declared type, and
// to display the same as the declared literal does.
func (vm *VM) execAssert(in ast.Instruction) {
	top := vm.top()
	typ := valueType(in.Value)
	if top.Type() != typ {
		vm.halt(fmt.Errorf("%w: expected %v, have %#v", ErrAssertion, in.Value, top))
	}
	want := vm.create(in.Value)
	if top.NotEqual(want) {
		vm.halt(fmt.Errorf("%w: expected %#v, have %#v", ErrAssertion, want, top))
	}
}

func (vm *VM) execPrint(in ast.Instruction) {
	top := vm.top()
	b, ok := top.Int8()
	if !ok {
		vm.halt(fmt.Errorf("%w: have %#v", ErrWrongType, top))
	}
	vm.writeByte(byte(b))
}

func (vm *VM) execExit(in ast.Instruction) {
	vm.halted = true
	vm.logf("#", "exit")
}

// arith pops rhs then lhs and pushes lhs op rhs; when the operation fails
// both operands stay popped.
func arith(op operand.Op) func(vm *VM, in ast.Instruction) {
	return func(vm *VM, in ast.Instruction) {
		vm.need(2)
		rhs := vm.pop()
		lhs := vm.pop()
		res, err := operand.Apply(op, lhs, rhs)
		vm.haltif(err)
		vm.push(res)
	}
}

func (vm *VM) create(val *ast.Value) operand.Operand {
	if val == nil {
		vm.halt(fmt.Errorf("%w: missing value", operand.ErrParse))
	}
	o, err := operand.Create(valueType(val), val.Number.Literal)
	vm.haltif(err)
	return o
}

func valueType(val *ast.Value) operand.Type {
	typ, ok := operand.TypeOfKind(val.Type.Kind)
	if !ok {
		panic(fmt.Sprintf("invalid value type token %v", val.Type))
	}
	return typ
}

func (vm *VM) need(n int) {
	if len(vm.stack) < n {
		vm.halt(fmt.Errorf("%w: need %v operand(s), have %v", ErrEmptyStack, n, len(vm.stack)))
	}
}

func (vm *VM) push(o operand.Operand) {
	vm.stack = append(vm.stack, o)
}

func (vm *VM) pop() operand.Operand {
	o := vm.top()
	vm.stack = vm.stack[:len(vm.stack)-1]
	return o
}

func (vm *VM) top() operand.Operand {
	vm.need(1)
	return vm.stack[len(vm.stack)-1]
}
