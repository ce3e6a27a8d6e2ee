package main

import (
	"github.com/Aolet/simplecalc/internal/metrics"
)

// Machine evaluates tokens against a stack of float64 values, using a shared
// read-only Registry to resolve command names.
type Machine struct {
	logging

	ops     *Registry
	stack   stack
	metrics *metrics.Session
}

// NewMachine creates a Machine with an empty stack; a nil reg means the
// built-in command table.
func NewMachine(reg *Registry) *Machine {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Machine{ops: reg}
}

// Stack returns a copy of the current stack, bottom first.
func (m *Machine) Stack() []float64 {
	return append([]float64{}, m.stack...)
}

// Eval interprets a single token, returning any lines of output.
//
// Numeric literals are pushed. Anything else is looked up as a command and
// run; unknown commands and stack-size violations are reported as a single
// output line, leaving the stack as it was.
func (m *Machine) Eval(token string) []string {
	if val, ok := parseNumber(token); ok {
		m.stack.push(val)
		m.metrics.Token(metrics.Literal)
		m.metrics.Depth(len(m.stack))
		m.logf(">", "push %v -- s:%v", formatNumber(val), m.stack)
		return nil
	}

	op, defined := m.ops.Lookup(token)
	if !defined {
		err := unknownCommandError(token)
		m.metrics.Token(metrics.Unknown)
		m.metrics.Failure(metrics.UnknownCommand)
		m.logf("!", "%v", err)
		return []string{err.Error()}
	}

	m.metrics.Token(metrics.Command)
	lines, err := op.apply(m.ops, &m.stack)
	if err != nil {
		m.metrics.Failure(metrics.StackSize)
		m.logf("!", "%v -- s:%v", err, m.stack)
		return []string{err.Error()}
	}
	m.metrics.Depth(len(m.stack))
	m.logf(">", "exec %v -- s:%v", token, m.stack)
	return lines
}
