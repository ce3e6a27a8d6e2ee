package main

import (
	"fmt"
	"math"
	"sort"
)

// Arity is the number of values an operation pops before computing.
type Arity int

// Operation arities.
const (
	Nullary Arity = iota
	Unary
	Binary
)

// Op describes one command: its display name, its arity, what it does to the
// stack, and a line of help. Exactly one of binop, unop, or stackop is set.
type Op struct {
	Name  string
	Arity Arity
	Help  string

	binop   func(first, second float64) float64
	unop    func(val float64) float64
	stackop func(reg *Registry, st *stack) []string
}

// apply runs op against st. If st is too shallow it is left untouched and a
// stackSizeError is returned instead.
func (op *Op) apply(reg *Registry, st *stack) ([]string, error) {
	if need := int(op.Arity); len(*st) < need {
		return nil, stackSizeError{op.Name, need, len(*st)}
	}
	switch {
	case op.binop != nil:
		first, second := st.pop(), st.pop()
		st.push(op.binop(first, second))
	case op.unop != nil:
		st.push(op.unop(st.pop()))
	case op.stackop != nil:
		return op.stackop(reg, st), nil
	}
	return nil, nil
}

// Registry maps command tokens to their operations. It is built once by
// NewRegistry and never mutated afterwards, so one Registry may be shared by
// any number of machines.
type Registry struct {
	ops   map[string]*Op
	names []string
}

// Lookup returns the operation registered under token.
func (reg *Registry) Lookup(token string) (*Op, bool) {
	op, ok := reg.ops[token]
	return op, ok
}

// Len returns the number of registered commands.
func (reg *Registry) Len() int { return len(reg.ops) }

// Names returns all registered command tokens, sorted.
func (reg *Registry) Names() []string {
	return append([]string(nil), reg.names...)
}

func (reg *Registry) define(token string, op Op) {
	if _, dup := reg.ops[token]; dup {
		panic(fmt.Sprintf("duplicate command %q", token))
	}
	if op.Name == "" {
		op.Name = token
	}
	reg.ops[token] = &op
	i := sort.SearchStrings(reg.names, token)
	reg.names = append(reg.names, "")
	copy(reg.names[i+1:], reg.names[i:])
	reg.names[i] = token
}

func (reg *Registry) binary(token, help string, f func(first, second float64) float64) {
	reg.define(token, Op{Arity: Binary, Help: help, binop: f})
}

func (reg *Registry) logical(token, help string, f func(first, second bool) bool) {
	reg.binary(token, help, func(first, second float64) float64 {
		return boolFloat(f(floatBool(first), floatBool(second)))
	})
}

func (reg *Registry) unary(token, help string, f func(val float64) float64) {
	reg.define(token, Op{Arity: Unary, Help: help, unop: f})
}

func (reg *Registry) predicate(token, help string, f func(val float64) bool) {
	reg.unary(token, help, func(val float64) float64 { return boolFloat(f(val)) })
}

// NewRegistry builds the table of built-in commands.
//
// Binary operations pop twice: the first value popped (the top of the stack)
// is their first operand, the value beneath it their second. So "10 3 -"
// computes 3-10.
func NewRegistry() *Registry {
	reg := &Registry{ops: make(map[string]*Op)}

	//// Arithmetic

	reg.binary("+", "pops a and b, pushes a + b",
		func(a, b float64) float64 { return a + b })
	reg.binary("-", "pops a and b, pushes a - b",
		func(a, b float64) float64 { return a - b })
	reg.binary("*", "pops a and b, pushes a * b",
		func(a, b float64) float64 { return a * b })
	reg.binary("/", "pops a and b, pushes a / b",
		func(a, b float64) float64 { return a / b })
	reg.binary("^", "pops a and b, pushes a raised to the power b",
		math.Pow)
	reg.binary("*e^", "pops a and b, pushes a * 10^b",
		func(a, b float64) float64 { return a * math.Pow(10, b) })
	reg.binary("/e^", "pops a and b, pushes a / 10^b",
		func(a, b float64) float64 { return a / math.Pow(10, b) })
	reg.binary("log", "pops a and b, pushes the logarithm of b in base a",
		func(a, b float64) float64 { return math.Log(b) / math.Log(a) })

	reg.unary("ln", "pops a, pushes the natural logarithm of a", math.Log)
	reg.unary("lg", "pops a, pushes the base 2 logarithm of a", math.Log2)
	reg.unary("sign", "pops a, pushes 1 if a is positive, -1 if negative, NaN if NaN", signum)

	//// Comparison

	reg.binary(">", "pops a and b, pushes 1 if a > b else 0",
		func(a, b float64) float64 { return boolFloat(a > b) })
	reg.binary("<", "pops a and b, pushes 1 if a < b else 0",
		func(a, b float64) float64 { return boolFloat(a < b) })
	reg.binary("==", "pops a and b, pushes 1 if a == b else 0",
		func(a, b float64) float64 { return boolFloat(a == b) })

	reg.predicate("inf?", "pops a, pushes 1 if a is infinite else 0",
		func(a float64) bool { return math.IsInf(a, 0) })
	reg.predicate("nan?", "pops a, pushes 1 if a is NaN else 0",
		math.IsNaN)
	reg.predicate("fin?", "pops a, pushes 1 if a is neither infinite nor NaN else 0",
		func(a float64) bool { return !math.IsInf(a, 0) && !math.IsNaN(a) })

	//// Logic: any non-zero value is true

	reg.logical("and", "pops a and b, pushes a AND b",
		func(a, b bool) bool { return a && b })
	reg.logical("or", "pops a and b, pushes a OR b",
		func(a, b bool) bool { return a || b })
	reg.logical("xor", "pops a and b, pushes a XOR b",
		func(a, b bool) bool { return a != b })
	reg.logical("nand", "pops a and b, pushes NOT (a AND b)",
		func(a, b bool) bool { return !(a && b) })
	reg.predicate("not", "pops a, pushes 1 if a is zero else 0",
		func(a float64) bool { return !floatBool(a) })

	//// Stack and introspection

	reg.define("print", Op{Arity: Unary, Help: "pops a and prints it",
		stackop: func(_ *Registry, st *stack) []string {
			return []string{formatNumber(st.pop())}
		}})
	reg.define("cp", Op{Arity: Unary, Help: "pushes a copy of the top of the stack",
		stackop: func(_ *Registry, st *stack) []string {
			st.push(st.peek())
			return nil
		}})
	reg.define("swap", Op{Arity: Binary, Help: "exchanges the top two values of the stack",
		stackop: func(_ *Registry, st *stack) []string {
			a, b := st.pop(), st.pop()
			st.push(a)
			st.push(b)
			return nil
		}})
	reg.define("help", Op{Arity: Nullary, Help: "prints this list of commands",
		stackop: func(reg *Registry, _ *stack) []string {
			lines := make([]string, 0, len(reg.names))
			for _, name := range reg.names {
				lines = append(lines, fmt.Sprintf("%v: %v", name, reg.ops[name].Help))
			}
			return lines
		}})

	return reg
}

func (arity Arity) String() string {
	switch arity {
	case Nullary:
		return "nullary"
	case Unary:
		return "unary"
	case Binary:
		return "binary"
	}
	return fmt.Sprintf("Arity(%d)", int(arity))
}
