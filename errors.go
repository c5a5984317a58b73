package main

import (
	"errors"
	"fmt"

	"github.com/jcorbin/avm/internal/ast"
	"github.com/jcorbin/avm/internal/token"
)

// Runtime failure kinds; the operand package adds its own for arithmetic and
// literal parsing.
var (
	ErrEmptyStack = errors.New("stack is empty")
	ErrAssertion  = errors.New("assertion failed")
	ErrWrongType  = errors.New("value is not of type int8")

	// ErrNotExecuted is matched by a SourceError.
	ErrNotExecuted = errors.New("program not executed")
)

// RuntimeError attributes a failure to the instruction that raised it.
type RuntimeError struct {
	Instr ast.Instruction
	Err   error
}

func (err RuntimeError) Error() string {
	return fmt.Sprintf("[line %v] %v: %v", err.Instr.Line, err.Instr, err.Err)
}

func (err RuntimeError) Unwrap() error { return err.Err }

// SourceError carries the diagnostics that prevented a program from running.
type SourceError struct {
	Name   string
	Errors token.ErrorList
}

func (err SourceError) Error() string {
	if err.Name == "" {
		return err.Errors.Error()
	}
	return fmt.Sprintf("%v: %v", err.Name, err.Errors)
}

// Is makes every SourceError match ErrNotExecuted.
func (err SourceError) Is(target error) bool { return target == ErrNotExecuted }

type opError ast.Opcode

func (op opError) Error() string { return fmt.Sprintf("invalid instruction %v", ast.Opcode(op)) }
