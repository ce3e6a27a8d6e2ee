package main

import "fmt"

// stack is a LIFO of float64 values; the top is the last element.
type stack []float64

func (st *stack) push(val float64) { *st = append(*st, val) }

func (st *stack) pop() (val float64) {
	i := len(*st) - 1
	val, *st = (*st)[i], (*st)[:i]
	return val
}

func (st stack) peek() float64 { return st[len(st)-1] }

// stackSizeError reports an operation that needs more values than the stack
// currently holds.
type stackSizeError struct {
	name string
	need int
	have int
}

func (err stackSizeError) Error() string {
	if err.need == 1 {
		return fmt.Sprintf("'%v' requires a non-empty stack", err.name)
	}
	return fmt.Sprintf("'%v' requires stack size >= %v, current = %v", err.name, err.need, err.have)
}

type unknownCommandError string

func (token unknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command '%v'", string(token))
}
