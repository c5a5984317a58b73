// Package token defines the lexical tokens of avm source and the diagnostics
// reported about them.
package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind uint8

// Token kinds; Invalid is the zero value and is never produced by scanning.
const (
	Invalid Kind = iota

	NEWLINE
	LPAREN
	RPAREN
	NUMBER

	INT8
	INT16
	INT32
	FLOAT
	DOUBLE

	PUSH
	POP
	DUMP
	ASSERT
	ADD
	SUB
	MUL
	DIV
	MOD
	PRINT
	EXIT

	INPUT_STOP
)

var kindNames = [...]string{
	Invalid:    "INVALID",
	NEWLINE:    "NEWLINE",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	NUMBER:     "NUMBER",
	INT8:       "INT8",
	INT16:      "INT16",
	INT32:      "INT32",
	FLOAT:      "FLOAT",
	DOUBLE:     "DOUBLE",
	PUSH:       "PUSH",
	POP:        "POP",
	DUMP:       "DUMP",
	ASSERT:     "ASSERT",
	ADD:        "ADD",
	SUB:        "SUB",
	MUL:        "MUL",
	DIV:        "DIV",
	MOD:        "MOD",
	PRINT:      "PRINT",
	EXIT:       "EXIT",
	INPUT_STOP: "INPUT_STOP",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Keywords maps every reserved word of the language to its kind.
var Keywords = map[string]Kind{
	"push":   PUSH,
	"pop":    POP,
	"dump":   DUMP,
	"add":    ADD,
	"sub":    SUB,
	"mul":    MUL,
	"div":    DIV,
	"mod":    MOD,
	"int8":   INT8,
	"int16":  INT16,
	"int32":  INT32,
	"float":  FLOAT,
	"double": DOUBLE,
	"assert": ASSERT,
	"print":  PRINT,
	"exit":   EXIT,
}

// IsType returns true for the operand type keywords.
func (k Kind) IsType() bool { return INT8 <= k && k <= DOUBLE }

// Token is one lexical unit of source text.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal string // set only for NUMBER
	Line    int
}

func (tok Token) String() string {
	lit := "(null)"
	if tok.Kind == NUMBER {
		lit = tok.Literal
	}
	return fmt.Sprintf("{%v %q %v line:%v}", tok.Kind, tok.Lexeme, lit, tok.Line)
}

// Kinds returns the kind of every token, handy for tests and debug output.
func Kinds(toks []Token) []Kind {
	kinds := make([]Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}
