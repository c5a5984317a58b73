package token

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_String(t *testing.T) {
	assert.Equal(t, `{NUMBER "-4.2" -4.2 line:3}`, Token{Kind: NUMBER, Lexeme: "-4.2", Literal: "-4.2", Line: 3}.String())
	assert.Equal(t, `{PUSH "push" (null) line:1}`, Token{Kind: PUSH, Lexeme: "push", Line: 1}.String())
	assert.Equal(t, "Kind(200)", Kind(200).String())
}

func TestKeywords(t *testing.T) {
	for word, kind := range Keywords {
		assert.NotEqual(t, Invalid, kind, "keyword %q", word)
	}
	for _, word := range []string{"int8", "int16", "int32", "float", "double"} {
		assert.True(t, Keywords[word].IsType(), "expected %q to be a type", word)
	}
	for _, word := range []string{"push", "assert", "exit"} {
		assert.False(t, Keywords[word].IsType(), "expected %q not to be a type", word)
	}
}

func TestErrorList(t *testing.T) {
	var list ErrorList
	assert.False(t, list.HadError())
	assert.NoError(t, list.Err())

	list.Add(1, "Unexpected Identifier: '%v'", "frob")
	list.AddAt(Token{Kind: RPAREN, Lexeme: ")", Line: 2}, "Expected a number")
	list.AddAt(Token{Kind: NEWLINE, Lexeme: "\n", Line: 3}, "Expected a number")
	list.AddAt(Token{Kind: INPUT_STOP, Line: 4}, "Expected newline")

	assert.True(t, list.HadError())
	var msgs []string
	for _, err := range list {
		msgs = append(msgs, err.Error())
	}
	assert.Equal(t, []string{
		"[line 1] Error: Unexpected Identifier: 'frob'",
		"[line 2] Error at ')': Expected a number",
		"[line 3] Error at end of line: Expected a number",
		"[line 4] Error at end: Expected newline",
	}, msgs)

	err := list.Err()
	assert.EqualError(t, err, "[line 1] Error: Unexpected Identifier: 'frob' (and 3 more errors)")
	var got ErrorList
	assert.True(t, errors.As(err, &got))
	assert.Len(t, got, 4)
}
