// Package parser builds an ast.Program from scanned tokens.
package parser

import (
	"errors"

	"github.com/jcorbin/avm/internal/ast"
	"github.com/jcorbin/avm/internal/token"
)

// Parser is a recursive descent parser over a token slice. Each syntax error
// is recorded into the shared error list, after which parsing resumes at the
// next line.
type Parser struct {
	toks []token.Token
	errs *token.ErrorList
	cur  int
}

// New creates a parser over toks that reports into errs.
func New(toks []token.Token, errs *token.ErrorList) *Parser {
	return &Parser{toks: toks, errs: errs}
}

// Parse is a convenience for New(toks, errs).Parse().
func Parse(toks []token.Token, errs *token.ErrorList) *ast.Program {
	return New(toks, errs).Parse()
}

// errNoInstruction signals that no further instruction starts at the cursor.
var errNoInstruction = errors.New("no instruction")

// syntaxError is a problem found at a token; it is recorded by Parse.
type syntaxError struct {
	tok  token.Token
	mess string
}

func (err syntaxError) Error() string { return err.mess }

// Parse consumes tokens until no further instruction can be parsed. Stopping
// anywhere but the end of input is itself an error. The returned program is
// partial if any error was recorded.
func (p *Parser) Parse() *ast.Program {
	prog := ast.NewProgram()
	for {
		in, err := p.statement()
		if err == errNoInstruction {
			if tok := p.peek(); tok.Kind != token.INPUT_STOP {
				p.errs.AddAt(tok, "Expected an instruction")
			}
			return prog
		}
		if err != nil {
			var se syntaxError
			if errors.As(err, &se) {
				p.errs.AddAt(se.tok, se.mess)
			}
			p.synchronize()
			continue
		}
		prog.Append(in)
		if p.atEnd() || p.match(token.INPUT_STOP) {
			return prog
		}
	}
}

// statement parses one instruction along with its terminating separator.
func (p *Parser) statement() (ast.Instruction, error) {
	in, err := p.instruction()
	if err != nil {
		return in, err
	}
	if p.atEnd() || p.check(token.INPUT_STOP) || p.match(token.NEWLINE) {
		return in, nil
	}
	return in, p.errorf(p.peek(), "Expected newline")
}

func (p *Parser) instruction() (ast.Instruction, error) {
	for p.match(token.NEWLINE) {
	}
	if p.atEnd() {
		return ast.Instruction{}, errNoInstruction
	}

	tok := p.peek()
	op, isOp := ast.Opcodes[tok.Kind]
	if !isOp {
		return ast.Instruction{}, errNoInstruction
	}
	p.advance()

	in := ast.Instruction{Op: op, Line: tok.Line}
	if op.HasValue() {
		val, err := p.value(tok)
		if err != nil {
			return in, err
		}
		in.Value = val
	}
	return in, nil
}

// value parses `type ( number )` following a push or assert keyword.
func (p *Parser) value(keyword token.Token) (*ast.Value, error) {
	if !p.peek().Kind.IsType() {
		return nil, p.errorf(keyword, "Expected a type")
	}
	typ := p.advance()

	if !p.match(token.LPAREN) {
		return nil, p.errorf(p.peek(), `Expected "(" after type`)
	}
	if !p.check(token.NUMBER) {
		return nil, p.errorf(p.peek(), "Expected a number")
	}
	num := p.advance()

	if !p.match(token.RPAREN) {
		return nil, p.errorf(p.peek(), `Expected ")" after number.`)
	}
	return &ast.Value{Type: typ, Number: num}, nil
}

// synchronize discards tokens through the next NEWLINE.
func (p *Parser) synchronize() {
	for !p.atEnd() && !p.check(token.NEWLINE) {
		if p.check(token.INPUT_STOP) {
			return
		}
		p.cur++
	}
	if !p.atEnd() {
		p.cur++
	}
}

func (p *Parser) errorf(tok token.Token, mess string) error {
	return syntaxError{tok, mess}
}

func (p *Parser) atEnd() bool { return p.cur >= len(p.toks) }

func (p *Parser) peek() token.Token {
	if p.atEnd() {
		if n := len(p.toks); n > 0 {
			last := p.toks[n-1]
			return token.Token{Kind: token.INPUT_STOP, Line: last.Line}
		}
		return token.Token{Kind: token.INPUT_STOP, Line: 1}
	}
	return p.toks[p.cur]
}

func (p *Parser) check(kind token.Kind) bool {
	return !p.atEnd() && p.toks[p.cur].Kind == kind
}

func (p *Parser) match(kind token.Kind) bool {
	if p.check(kind) {
		p.cur++
		return true
	}
	return false
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if !p.atEnd() {
		p.cur++
	}
	return tok
}
