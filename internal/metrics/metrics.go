// Package metrics counts what a calculator session evaluates, as Prometheus
// collectors.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// TokenKind classifies an evaluated token.
type TokenKind string

// Token kinds.
const (
	Literal TokenKind = "literal"
	Command TokenKind = "command"
	Unknown TokenKind = "unknown"
)

// ErrorKind classifies a reported evaluation failure.
type ErrorKind string

// Error kinds.
const (
	StackSize      ErrorKind = "stack_size"
	UnknownCommand ErrorKind = "unknown_command"
)

// Session holds the collectors for one calculator session. A nil *Session is
// valid and records nothing.
type Session struct {
	tokens *prometheus.CounterVec
	errors *prometheus.CounterVec
	depth  prometheus.Gauge
}

// New creates session collectors, registering them with reg if non-nil.
func New(reg prometheus.Registerer) *Session {
	s := &Session{
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "simplecalc",
			Name:      "tokens_total",
			Help:      "Number of tokens evaluated, by kind.",
		}, []string{"kind"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "simplecalc",
			Name:      "errors_total",
			Help:      "Number of evaluation failures reported, by kind.",
		}, []string{"kind"}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "simplecalc",
			Name:      "stack_depth",
			Help:      "Number of values on the stack after the last successful evaluation.",
		}),
	}
	if reg != nil {
		reg.MustRegister(s.tokens, s.errors, s.depth)
	}
	return s
}

// Token counts one evaluated token.
func (s *Session) Token(kind TokenKind) {
	if s != nil {
		s.tokens.WithLabelValues(string(kind)).Inc()
	}
}

// Failure counts one reported failure.
func (s *Session) Failure(kind ErrorKind) {
	if s != nil {
		s.errors.WithLabelValues(string(kind)).Inc()
	}
}

// Depth records the current stack depth.
func (s *Session) Depth(n int) {
	if s != nil {
		s.depth.Set(float64(n))
	}
}

// TokenCounter returns the counter for kind, mostly for tests; it is nil for a
// nil Session.
func (s *Session) TokenCounter(kind TokenKind) prometheus.Counter {
	if s == nil {
		return nil
	}
	return s.tokens.WithLabelValues(string(kind))
}

// ErrorCounter returns the counter for kind, or nil for a nil Session.
func (s *Session) ErrorCounter(kind ErrorKind) prometheus.Counter {
	if s == nil {
		return nil
	}
	return s.errors.WithLabelValues(string(kind))
}

// DepthGauge returns the stack depth gauge, or nil for a nil Session.
func (s *Session) DepthGauge() prometheus.Gauge {
	if s == nil {
		return nil
	}
	return s.depth
}

// Dump writes everything gathered from g in the Prometheus text format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
