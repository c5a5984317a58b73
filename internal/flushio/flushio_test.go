package flushio

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriteFlusher(t *testing.T) {
	assert.Equal(t, Discard, NewWriteFlusher(nil))
	assert.Equal(t, Discard, NewWriteFlusher(io.Discard))

	var sb strings.Builder
	wf := NewWriteFlusher(&sb)
	io.WriteString(wf, "unbuffered")
	assert.Equal(t, "unbuffered", sb.String(), "expected in-memory writes to land immediately")

	var buf bytes.Buffer
	assert.IsType(t, nopFlusher{}, NewWriteFlusher(&buf))

	bw := NewWriteFlusher(os.Stdout)
	assert.Same(t, bw, NewWriteFlusher(bw), "expected WriteFlusher to be returned as is")
}

func TestWriteFlushers(t *testing.T) {
	assert.Equal(t, Discard, WriteFlushers())
	assert.Equal(t, Discard, WriteFlushers(nil, Discard))

	var a, b strings.Builder
	one := NewWriteFlusher(&a)
	assert.Equal(t, one, WriteFlushers(one, nil), "expected single writer to be returned as is")

	both := WriteFlushers(WriteFlushers(one), NewWriteFlusher(&b))
	n, err := io.WriteString(both, "6\n5\n")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.NoError(t, both.Flush())
	assert.Equal(t, "6\n5\n", a.String())
	assert.Equal(t, "6\n5\n", b.String())
}
