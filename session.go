package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Aolet/simplecalc/internal/fileinput"
	"github.com/Aolet/simplecalc/internal/flushio"
	"github.com/Aolet/simplecalc/internal/logio"
	"github.com/Aolet/simplecalc/internal/metrics"
)

// LineReader reads one line of input after presenting prompt; it returns
// io.EOF once input is exhausted. *liner.State is one.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Session drives a Machine from a LineReader, one whitespace separated token
// at a time, writing any output lines as it goes.
type Session struct {
	logging
	machine *Machine

	in      LineReader
	out     flushio.WriteFlusher
	closers []io.Closer

	prompt   string
	banner   []string
	farewell []string

	reg     *Registry
	metrics *metrics.Session
}

func (s *Session) init() {
	if s.in == nil {
		s.in = &plainReader{}
	}
	if pr, ok := s.in.(*plainReader); ok {
		pr.out = s.out
		s.closers = append(s.closers, &pr.Input)
	}
	s.machine = NewMachine(s.reg)
	s.machine.logfn = s.logfn
	s.machine.metrics = s.metrics
}

// Machine returns the session's machine.
func (s *Session) Machine() *Machine { return s.machine }

// Close releases all input resources.
func (s *Session) Close() (err error) {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if cerr := s.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	s.closers = nil
	return err
}

func (s *Session) run(ctx context.Context) (rerr error) {
	defer func() {
		if ferr := s.out.Flush(); rerr == nil {
			rerr = ferr
		}
	}()

	if s.logfn != nil {
		defer s.machine.withLogPrefix("\t")()
		defer s.dumpToLog()
	}

	if err := flushio.WriteLines(s.out, s.banner...); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		// line readers like liner draw on the terminal themselves, so anything
		// buffered must reach it before they block
		if err := s.out.Flush(); err != nil {
			return fmt.Errorf("write failed: %w", err)
		}

		line, err := s.in.Prompt(s.prompt)
		if err == io.EOF {
			s.logf("#", "end of input")
			return flushio.WriteLines(s.out, s.farewell...)
		} else if err != nil {
			return fmt.Errorf("read failed: %w", err)
		}
		s.logf("<", "read %q%v", line, s.location())

		for _, token := range strings.Fields(line) {
			if err := flushio.WriteLines(s.out, s.machine.Eval(token)...); err != nil {
				return fmt.Errorf("write failed: %w", err)
			}
		}
	}
}

func (s *Session) location() string {
	if loc, ok := s.in.(interface{ Location() fileinput.Location }); ok {
		return " from " + loc.Location().String()
	}
	return ""
}

func (s *Session) dumpToLog() {
	lw := logio.Writer{Logf: s.logfn}
	defer lw.Close()
	machineDumper{m: s.machine, out: &lw, withCommands: true}.dump()
}
