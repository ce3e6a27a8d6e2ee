package flushio_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aolet/simplecalc/internal/flushio"
)

func Test_NewWriteFlusher(t *testing.T) {
	var sb strings.Builder
	wf := flushio.NewWriteFlusher(&sb)
	require.NoError(t, flushio.WriteLines(wf, "5", "-7"))
	assert.Equal(t, "5\n-7\n", sb.String(), "buffers are written through")

	bw := bufio.NewWriter(ioutil.Discard)
	assert.Equal(t, flushio.WriteFlusher(bw), flushio.NewWriteFlusher(bw), "existing flushers are kept")

	var buf bytes.Buffer
	wf = flushio.NewWriteFlusher(writerOnly{&buf})
	require.NoError(t, flushio.WriteLines(wf, "hello"))
	assert.Equal(t, "", buf.String(), "expected buffering")
	require.NoError(t, wf.Flush())
	assert.Equal(t, "hello\n", buf.String(), "expected output after flush")
}

// writerOnly hides everything but Write.
type writerOnly struct{ w io.Writer }

func (wo writerOnly) Write(p []byte) (int, error) { return wo.w.Write(p) }

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("nope") }

func Test_WriteFlushers(t *testing.T) {
	var a, b strings.Builder
	wf := flushio.WriteFlushers(flushio.NewWriteFlusher(&a), nil, flushio.NewWriteFlusher(&b))
	require.NoError(t, flushio.WriteLines(wf, "x"))
	require.NoError(t, wf.Flush())
	assert.Equal(t, "x\n", a.String())
	assert.Equal(t, "x\n", b.String())

	assert.Nil(t, flushio.WriteFlushers())

	wf = flushio.WriteFlushers(flushio.NewWriteFlusher(&a), flushio.NewWriteFlusher(failWriter{}))
	require.NoError(t, flushio.WriteLines(wf, "y"), "second writer buffers")
	assert.EqualError(t, wf.Flush(), "nope")
}
