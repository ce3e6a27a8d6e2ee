package main

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Registry(t *testing.T) {
	reg := NewRegistry()

	expected := map[string]Arity{
		"-": Binary, "+": Binary, "*": Binary, "/": Binary, "^": Binary,
		"*e^": Binary, "/e^": Binary, "log": Binary,
		">": Binary, "<": Binary, "==": Binary,
		"nand": Binary, "and": Binary, "or": Binary, "xor": Binary,
		"ln": Unary, "lg": Unary, "inf?": Unary, "nan?": Unary,
		"sign": Unary, "fin?": Unary, "not": Unary,
		"print": Unary, "cp": Unary, "swap": Binary, "help": Nullary,
	}
	require.Equal(t, len(expected), reg.Len(), "expected command count")

	for name, arity := range expected {
		op, ok := reg.Lookup(name)
		if assert.True(t, ok, "expected %q to be registered", name) {
			assert.Equal(t, name, op.Name, "expected display name for %q", name)
			assert.Equal(t, arity, op.Arity, "expected arity for %q", name)
			assert.NotEmpty(t, op.Help, "expected help for %q", name)
		}
	}

	_, ok := reg.Lookup("quit")
	assert.False(t, ok, "there is no quit command")

	names := reg.Names()
	assert.True(t, sort.StringsAreSorted(names), "expected sorted names")
	names[0] = "clobbered"
	assert.NotEqual(t, "clobbered", reg.Names()[0], "Names returns a copy")
}

func Test_Registry_duplicate(t *testing.T) {
	reg := NewRegistry()
	assert.Panics(t, func() {
		reg.unary("ln", "again", func(val float64) float64 { return val })
	})
}

func Test_Registry_shared(t *testing.T) {
	reg := NewRegistry()
	a, b := NewMachine(reg), NewMachine(reg)
	a.Eval("1")
	b.Eval("2")
	b.Eval("3")
	assert.Equal(t, []float64{1}, a.Stack())
	assert.Equal(t, []float64{2, 3}, b.Stack())
}

func Test_Arity_String(t *testing.T) {
	assert.Equal(t, "nullary", Nullary.String())
	assert.Equal(t, "unary", Unary.String())
	assert.Equal(t, "binary", Binary.String())
	assert.Equal(t, "Arity(7)", Arity(7).String())
}
