package main

import (
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseFlags(t *testing.T) {
	parse := func(args ...string) (flags, string, error) {
		var usage strings.Builder
		fs := flag.NewFlagSet("simplecalc", flag.ContinueOnError)
		fs.SetOutput(&usage)
		f, err := parseFlags(fs, args)
		return f, usage.String(), err
	}

	t.Run("none", func(t *testing.T) {
		f, usage, err := parse()
		require.NoError(t, err)
		assert.Equal(t, flags{}, f)
		assert.Equal(t, "", usage)
	})

	t.Run("all", func(t *testing.T) {
		f, _, err := parse("-trace", "-metrics", "-timeout", "2s")
		require.NoError(t, err)
		assert.Equal(t, flags{timeout: 2 * time.Second, trace: true, metrics: true}, f)
	})

	t.Run("positional", func(t *testing.T) {
		_, usage, err := parse("-trace", "1", "2", "+")
		assert.EqualError(t, err, `unexpected arguments: ["1" "2" "+"]`)
		assert.Contains(t, usage, "Usage of simplecalc")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, usage, err := parse("-nope")
		assert.Error(t, err)
		assert.Contains(t, usage, "-nope")
	})
}
