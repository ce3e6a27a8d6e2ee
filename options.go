package main

import (
	"io"
	"io/ioutil"

	"github.com/Aolet/simplecalc/internal/fileinput"
	"github.com/Aolet/simplecalc/internal/flushio"
	"github.com/Aolet/simplecalc/internal/metrics"
)

// SessionOption configures a Session built by New.
type SessionOption interface{ apply(s *Session) }

var defaultOptions = SessionOptions(
	withOutput(ioutil.Discard),
)

// SessionOptions combines any number of options into one, applied in order.
func SessionOptions(opts ...SessionOption) SessionOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []SessionOption

func (opts options) apply(s *Session) {
	for _, opt := range opts {
		opt.apply(s)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(s *Session) {
	s.logfn = logfn
}

type inputOption struct{ io.Reader }
type lineReaderOption struct{ LineReader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type promptOption string
type bannerOption []string
type farewellOption []string
type registryOption struct{ *Registry }
type metricsOption struct{ *metrics.Session }

func withInput(r io.Reader) inputOption             { return inputOption{r} }
func withLineReader(lr LineReader) lineReaderOption { return lineReaderOption{lr} }
func withOutput(w io.Writer) outputOption           { return outputOption{w} }
func withTee(w io.Writer) teeOption                 { return teeOption{w} }
func withPrompt(prompt string) promptOption         { return promptOption(prompt) }
func withBanner(lines ...string) bannerOption       { return bannerOption(lines) }
func withFarewell(lines ...string) farewellOption   { return farewellOption(lines) }
func withRegistry(reg *Registry) registryOption     { return registryOption{reg} }
func withMetrics(m *metrics.Session) metricsOption  { return metricsOption{m} }

// Inputs queue up behind any prior input, and are read in order.
func (i inputOption) apply(s *Session) {
	in, ok := s.in.(*plainReader)
	if !ok {
		in = &plainReader{}
		s.in = in
	}
	in.Queue = append(in.Queue, i.Reader)
}

func (lr lineReaderOption) apply(s *Session) {
	s.in = lr.LineReader
	if cl, ok := lr.LineReader.(io.Closer); ok {
		s.closers = append(s.closers, cl)
	}
}

func (o outputOption) apply(s *Session) {
	if s.out != nil {
		s.out.Flush()
	}
	s.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(s *Session) {
	s.out = flushio.WriteFlushers(s.out, flushio.NewWriteFlusher(o.Writer))
}

func (prompt promptOption) apply(s *Session)  { s.prompt = string(prompt) }
func (lines bannerOption) apply(s *Session)   { s.banner = lines }
func (lines farewellOption) apply(s *Session) { s.farewell = lines }
func (reg registryOption) apply(s *Session)   { s.reg = reg.Registry }
func (m metricsOption) apply(s *Session)      { s.metrics = m.Session }

// plainReader reads lines from a fileinput queue, writing any prompt to the
// session output first.
type plainReader struct {
	fileinput.Input
	out flushio.WriteFlusher
}

func (pr *plainReader) Prompt(prompt string) (string, error) {
	if prompt != "" && pr.out != nil {
		if _, err := io.WriteString(pr.out, prompt); err != nil {
			return "", err
		}
		if err := pr.out.Flush(); err != nil {
			return "", err
		}
	}
	return pr.ReadLine()
}

func (pr *plainReader) Location() fileinput.Location { return pr.Last }
