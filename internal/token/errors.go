package token

import (
	"fmt"
	"strings"
)

// Error is a diagnostic about source text, attached to a line and optionally
// to the lexeme found there.
type Error struct {
	Line int
	Near string
	Msg  string
}

func (err Error) Error() string {
	if err.Near == "" {
		return fmt.Sprintf("[line %v] Error: %v", err.Line, err.Msg)
	}
	return fmt.Sprintf("[line %v] Error %v: %v", err.Line, err.Near, err.Msg)
}

// ErrorList accumulates diagnostics from the scanner and parser. Once anything
// has been added, the program it describes must not be executed.
type ErrorList []Error

// Add records a diagnostic at the given line.
func (list *ErrorList) Add(line int, mess string, args ...interface{}) {
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	*list = append(*list, Error{Line: line, Msg: mess})
}

// AddAt records a diagnostic about a specific token.
func (list *ErrorList) AddAt(tok Token, mess string) {
	var near string
	switch tok.Kind {
	case INPUT_STOP:
		near = "at end"
	case NEWLINE:
		near = "at end of line"
	default:
		near = fmt.Sprintf("at '%v'", tok.Lexeme)
	}
	*list = append(*list, Error{Line: tok.Line, Near: near, Msg: mess})
}

// HadError returns true if any diagnostic was recorded.
func (list ErrorList) HadError() bool { return len(list) > 0 }

// Err returns nil for an empty list, the list itself otherwise.
func (list ErrorList) Err() error {
	if len(list) == 0 {
		return nil
	}
	return list
}

func (list ErrorList) Error() string {
	switch len(list) {
	case 0:
		return "no errors"
	case 1:
		return list[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(list[0].Error())
	fmt.Fprintf(&sb, " (and %d more errors)", len(list)-1)
	return sb.String()
}
