// Package ast defines the instruction nodes produced by the parser.
package ast

import (
	"fmt"
	"strings"

	"github.com/jcorbin/avm/internal/token"
)

// Opcode names an instruction's operation.
type Opcode uint8

// Opcodes, one per instruction keyword.
const (
	Push Opcode = iota + 1
	Pop
	Dump
	Assert
	Add
	Sub
	Mul
	Div
	Mod
	Print
	Exit
)

var opcodeNames = [...]string{
	Push:   "push",
	Pop:    "pop",
	Dump:   "dump",
	Assert: "assert",
	Add:    "add",
	Sub:    "sub",
	Mul:    "mul",
	Div:    "div",
	Mod:    "mod",
	Print:  "print",
	Exit:   "exit",
}

func (op Opcode) String() string {
	if op > 0 && int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return fmt.Sprintf("Opcode(%d)", uint8(op))
}

// HasValue returns true for the opcodes that carry a Value.
func (op Opcode) HasValue() bool { return op == Push || op == Assert }

// Opcodes maps instruction keyword kinds to opcodes.
var Opcodes = map[token.Kind]Opcode{
	token.PUSH:   Push,
	token.POP:    Pop,
	token.DUMP:   Dump,
	token.ASSERT: Assert,
	token.ADD:    Add,
	token.SUB:    Sub,
	token.MUL:    Mul,
	token.DIV:    Div,
	token.MOD:    Mod,
	token.PRINT:  Print,
	token.EXIT:   Exit,
}

// Value is the typed literal argument of push and assert.
type Value struct {
	Type   token.Token
	Number token.Token
}

func (val Value) String() string {
	return fmt.Sprintf("%v(%v)", val.Type.Lexeme, val.Number.Lexeme)
}

// Instruction is one parsed statement. Value is nil unless Op.HasValue().
type Instruction struct {
	Op    Opcode
	Value *Value
	Line  int
}

func (in Instruction) String() string {
	if in.Value != nil {
		return fmt.Sprintf("%v %v", in.Op, in.Value)
	}
	return in.Op.String()
}

// Program is a queue of instructions, drained front to back by Next.
type Program struct {
	instrs []Instruction
}

// NewProgram creates a program from the given instructions.
func NewProgram(instrs ...Instruction) *Program {
	return &Program{instrs: instrs}
}

// Append adds an instruction to the end of the program.
func (prog *Program) Append(in Instruction) { prog.instrs = append(prog.instrs, in) }

// Len returns the number of instructions not yet consumed.
func (prog *Program) Len() int { return len(prog.instrs) }

// Next removes and returns the front instruction, or false when drained.
func (prog *Program) Next() (in Instruction, ok bool) {
	if len(prog.instrs) == 0 {
		return in, false
	}
	in, prog.instrs = prog.instrs[0], prog.instrs[1:]
	return in, true
}

// Instructions returns the remaining instructions without consuming them.
func (prog *Program) Instructions() []Instruction { return prog.instrs }

func (prog *Program) String() string {
	var sb strings.Builder
	for _, in := range prog.instrs {
		sb.WriteString(in.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
