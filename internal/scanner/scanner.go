// Package scanner turns avm source text into tokens.
package scanner

import (
	"unicode/utf8"

	"github.com/jcorbin/avm/internal/token"
)

// Scanner performs a single left-to-right pass over source text. Problems are
// recorded into the shared error list and scanning carries on past them.
type Scanner struct {
	src  []byte
	errs *token.ErrorList

	start  int
	cursor int
	line   int
	toks   []token.Token
}

// New creates a scanner over src that reports into errs.
func New(src []byte, errs *token.ErrorList) *Scanner {
	return &Scanner{
		src:  src,
		errs: errs,
		line: 1,
	}
}

// Scan is a convenience for New(src, errs).Scan().
func Scan(src []byte, errs *token.ErrorList) []token.Token {
	return New(src, errs).Scan()
}

// WithLine sets the line number of the first source line, so that callers
// feeding one line at a time may keep numbering continuous.
func (s *Scanner) WithLine(line int) *Scanner {
	if line > 0 {
		s.line = line
	}
	return s
}

// Line returns the current line number; after Scan it is one past the number
// of newlines consumed.
func (s *Scanner) Line() int { return s.line }

// Scan consumes all source text, returning the tokens found terminated by one
// INPUT_STOP token.
func (s *Scanner) Scan() []token.Token {
	for !s.atEnd() {
		s.start = s.cursor
		s.scanToken()
	}
	s.start = s.cursor
	s.add(token.INPUT_STOP)
	return s.toks
}

func (s *Scanner) scanToken() {
	switch ch := s.advance(); ch {
	case '(':
		s.add(token.LPAREN)
	case ')':
		s.add(token.RPAREN)
	case ';':
		for !s.atEnd() && s.peek() != '\n' {
			s.cursor++
		}
	case ' ', '\t', '\r':
	case '\n':
		s.newline()
	default:
		switch {
		case isAlpha(ch):
			s.identifier()
		case isDigit(ch) || ch == '-':
			s.number()
		default:
			s.unexpected()
		}
	}
}

// newline emits one NEWLINE token for a run of consecutive line feeds.
func (s *Scanner) newline() {
	line := s.line
	s.line++
	for !s.atEnd() && s.peek() == '\n' {
		s.cursor++
		s.line++
	}
	s.toks = append(s.toks, token.Token{
		Kind:   token.NEWLINE,
		Lexeme: string(s.src[s.start:s.cursor]),
		Line:   line,
	})
}

func (s *Scanner) identifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.cursor++
	}
	text := string(s.src[s.start:s.cursor])
	if kind, ok := token.Keywords[text]; ok {
		s.add(kind)
		return
	}
	s.errs.Add(s.line, "Unexpected Identifier: '%v'", text)
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.cursor++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.cursor++
		for isDigit(s.peek()) {
			s.cursor++
		}
	}
	text := string(s.src[s.start:s.cursor])
	s.toks = append(s.toks, token.Token{
		Kind:    token.NUMBER,
		Lexeme:  text,
		Literal: text,
		Line:    s.line,
	})
}

func (s *Scanner) unexpected() {
	// report whole runes, not their individual bytes
	r, n := utf8.DecodeRune(s.src[s.start:])
	if n > 1 {
		s.cursor = s.start + n
	}
	s.errs.Add(s.line, "Unexpected Character: %q", r)
}

func (s *Scanner) add(kind token.Kind) {
	s.toks = append(s.toks, token.Token{
		Kind:   kind,
		Lexeme: string(s.src[s.start:s.cursor]),
		Line:   s.line,
	})
}

func (s *Scanner) atEnd() bool { return s.cursor >= len(s.src) }

func (s *Scanner) advance() byte {
	s.cursor++
	return s.src[s.cursor-1]
}

func (s *Scanner) peek() byte {
	if s.cursor >= len(s.src) {
		return 0
	}
	return s.src[s.cursor]
}

func (s *Scanner) peekNext() byte {
	if s.cursor+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cursor+1]
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isAlpha(ch byte) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }
