package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aolet/simplecalc/internal/metrics"
)

func Test_Session(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := metrics.New(reg)

	s.Token(metrics.Literal)
	s.Token(metrics.Literal)
	s.Token(metrics.Command)
	s.Failure(metrics.StackSize)
	s.Depth(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.TokenCounter(metrics.Literal)))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.TokenCounter(metrics.Command)))
	assert.Equal(t, 0.0, testutil.ToFloat64(s.TokenCounter(metrics.Unknown)))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.ErrorCounter(metrics.StackSize)))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.DepthGauge()))

	var out strings.Builder
	require.NoError(t, metrics.Dump(&out, reg))
	assert.Contains(t, out.String(), `simplecalc_tokens_total{kind="literal"} 2`)
	assert.Contains(t, out.String(), `simplecalc_errors_total{kind="stack_size"} 1`)
	assert.Contains(t, out.String(), "simplecalc_stack_depth 2")
}

func Test_Session_nil(t *testing.T) {
	var s *metrics.Session
	assert.NotPanics(t, func() {
		s.Token(metrics.Unknown)
		s.Failure(metrics.UnknownCommand)
		s.Depth(3)
	})
	assert.Nil(t, s.TokenCounter(metrics.Literal))
	assert.Nil(t, s.ErrorCounter(metrics.StackSize))
	assert.Nil(t, s.DepthGauge())
}
