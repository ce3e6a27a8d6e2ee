package fileinput_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aolet/simplecalc/internal/fileinput"
)

func Test_Input(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{
		fileinput.NamedReader("a", strings.NewReader("1 2 +\nprint\r\n")),
		fileinput.NamedReader("b", strings.NewReader("")),
		fileinput.NamedReader("c", strings.NewReader("\n3 cp\nhelp")),
	}}

	type step struct {
		line string
		loc  string
	}
	for _, expect := range []step{
		{"1 2 +", "a:1"},
		{"print", "a:2"},
		{"", "c:1"},
		{"3 cp", "c:2"},
		{"help", "c:3"},
	} {
		line, err := in.ReadLine()
		require.NoError(t, err, "unexpected read error before %q", expect.line)
		assert.Equal(t, expect.line, line, "expected line")
		assert.Equal(t, expect.loc, in.Last.String(), "expected location")
	}

	_, err := in.ReadLine()
	assert.Equal(t, io.EOF, err, "expected EOF after last stream")
	_, err = in.ReadLine()
	assert.Equal(t, io.EOF, err, "expected EOF to be sticky")
}

func Test_Input_unnamed(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{strings.NewReader("x\n")}}
	line, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "x", line)
	assert.Equal(t, "<unnamed *strings.Reader>:1", in.Last.String())
}

type closeCounter struct {
	io.Reader
	closed *int
}

func (cc closeCounter) Close() error { *cc.closed++; return nil }

func Test_Input_closes(t *testing.T) {
	var closed int
	in := fileinput.Input{Queue: []io.Reader{
		closeCounter{strings.NewReader("a\n"), &closed},
		closeCounter{strings.NewReader("b\n"), &closed},
	}}

	line, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a", line)
	assert.Equal(t, 0, closed, "first stream still open")

	require.NoError(t, in.Close())
	assert.Equal(t, 2, closed, "expected both streams closed")

	_, err = in.ReadLine()
	assert.True(t, errors.Is(err, io.EOF))
}

type errReader struct{ err error }

func (er errReader) Read(p []byte) (int, error) { return 0, er.err }

func Test_Input_error(t *testing.T) {
	boom := errors.New("boom")
	in := fileinput.Input{Queue: []io.Reader{errReader{boom}}}
	_, err := in.ReadLine()
	assert.Equal(t, boom, err)
}
