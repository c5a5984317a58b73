// Package fileinput reads source text line by line from a queue of input
// streams, tracking where each line came from.
package fileinput

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/avm/internal/runeio"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Line is one line of input text, without its line feed.
type Line struct {
	Location
	Text string
}

func (il Line) String() string { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of one or more
// input streams. The last line read is retained to facilitate user feedback.
type Input struct {
	Queue []io.Reader
	Last  Line

	rr   runeio.Reader
	loc  Location
	scan strings.Builder
}

// ReadLine reads the next line from the current input stream, moving on
// through the Queue as streams are exhausted. A final line lacking a line
// feed is still returned. Returns io.EOF once every stream is exhausted.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return Line{}, io.EOF
		}

		r, _, err := in.rr.ReadRune()
		if err == nil {
			if r == '\n' {
				return in.nextLine(), nil
			}
			in.scan.WriteRune(r)
			continue
		}
		if err != io.EOF {
			return Line{}, err
		}

		partial := in.scan.Len() > 0
		var line Line
		if partial {
			line = in.nextLine()
		}
		in.closeIn()
		if partial {
			return line, nil
		}
	}
}

func (in *Input) nextLine() Line {
	text := strings.TrimSuffix(in.scan.String(), "\r")
	in.Last = Line{Location: in.loc, Text: text}
	in.scan.Reset()
	in.loc.Line++
	return in.Last
}

func (in *Input) closeIn() {
	if cl, ok := in.rr.(io.Closer); ok {
		cl.Close()
	}
	in.rr = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.rr = runeio.NewReader(r)
	in.loc = Location{Name: runeio.Name(r), Line: 1}
	in.scan.Reset()
	return true
}

// NamedReader attaches a name to r, reported in the Location of its lines.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
