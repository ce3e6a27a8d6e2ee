package main

import (
	"context"
	"errors"
	"io"

	"github.com/Aolet/simplecalc/internal/metrics"
	"github.com/Aolet/simplecalc/internal/panicerr"
)

// New creates a calculator Session; without options it reads nothing and
// discards all output.
func New(opts ...SessionOption) *Session {
	var s Session
	defaultOptions.apply(&s)
	SessionOptions(opts...).apply(&s)
	s.init()
	return &s
}

// Run reads lines until end of input, evaluating every token and writing its
// output. Reaching the end of input is not an error.
func (s *Session) Run(ctx context.Context) error {
	err := panicerr.Recover("session", func() error {
		return s.run(ctx)
	})
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func WithInput(r io.Reader) SessionOption          { return withInput(r) }
func WithLineReader(lr LineReader) SessionOption   { return withLineReader(lr) }
func WithOutput(w io.Writer) SessionOption         { return withOutput(w) }
func WithTee(w io.Writer) SessionOption            { return withTee(w) }
func WithPrompt(prompt string) SessionOption       { return withPrompt(prompt) }
func WithBanner(lines ...string) SessionOption     { return withBanner(lines...) }
func WithFarewell(lines ...string) SessionOption   { return withFarewell(lines...) }
func WithRegistry(reg *Registry) SessionOption     { return withRegistry(reg) }
func WithMetrics(m *metrics.Session) SessionOption { return withMetrics(m) }

func WithLogf(logfn func(mess string, args ...interface{})) SessionOption { return withLogfn(logfn) }
