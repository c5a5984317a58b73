// Package runeio provides the rune reading and raw byte writing used by
// avm input and output.
package runeio

import (
	"bufio"
	"fmt"
	"io"
)

// Reader is an io.Reader that can also read single runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns r itself if it already reads runes, otherwise r wrapped
// in a bufio.Reader. A name that r reports through Name() carries through.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	br := bufio.NewReader(r)
	if nom, ok := r.(interface{ Name() string }); ok {
		return namedReader{br, nom.Name()}
	}
	return br
}

type namedReader struct {
	*bufio.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

// Name returns r's name if it has one, such as the path of an *os.File, or a
// placeholder describing its type.
func Name(r io.Reader) string {
	if nom, ok := r.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", r)
}
