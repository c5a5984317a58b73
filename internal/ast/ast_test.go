package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/avm/internal/ast"
	"github.com/jcorbin/avm/internal/token"
)

func TestProgramFIFO(t *testing.T) {
	val := &ast.Value{
		Type:   token.Token{Kind: token.INT32, Lexeme: "int32", Line: 1},
		Number: token.Token{Kind: token.NUMBER, Lexeme: "42", Literal: "42", Line: 1},
	}
	prog := ast.NewProgram(ast.Instruction{Op: ast.Push, Value: val, Line: 1})
	prog.Append(ast.Instruction{Op: ast.Dump, Line: 2})
	prog.Append(ast.Instruction{Op: ast.Exit, Line: 3})

	assert.Equal(t, "push int32(42)\ndump\nexit\n", prog.String())
	assert.Equal(t, 3, prog.Len())

	var ops []ast.Opcode
	for in, ok := prog.Next(); ok; in, ok = prog.Next() {
		ops = append(ops, in.Op)
	}
	assert.Equal(t, []ast.Opcode{ast.Push, ast.Dump, ast.Exit}, ops)
	assert.Equal(t, 0, prog.Len(), "expected drained program")

	_, ok := prog.Next()
	assert.False(t, ok, "expected no more instructions")
}

func TestOpcodes(t *testing.T) {
	for kind, op := range ast.Opcodes {
		assert.Equal(t, token.Keywords[op.String()], kind, "keyword for %v", op)
		assert.Equal(t, kind == token.PUSH || kind == token.ASSERT, op.HasValue(), "%v has value", op)
	}
	assert.Equal(t, "Opcode(0)", ast.Opcode(0).String())
}
