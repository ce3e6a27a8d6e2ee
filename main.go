package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aolet/simplecalc/internal/logio"
	"github.com/Aolet/simplecalc/internal/metrics"
)

const defaultPrompt = "> "

var (
	banner = []string{
		"",
		"Welcome to simplecalc, a Reverse Polish Notation (RPN) calculator!",
		"For help, please use the 'help' command!",
		"Use Ctrl+D to exit the calculator at any time.",
		"",
	}
	farewell = []string{"", "goodbyte!"}
)

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()
	log.ErrorIf(run(context.Background(), &log))
}

type flags struct {
	timeout time.Duration
	trace   bool
	metrics bool
}

// parseFlags parses args into fs; the calculator reads everything else from
// stdin, so any positional argument is a usage error.
func parseFlags(fs *flag.FlagSet, args []string) (flags, error) {
	var f flags
	fs.DurationVar(&f.timeout, "timeout", 0, "specify a time limit")
	fs.BoolVar(&f.trace, "trace", false, "enable trace logging")
	fs.BoolVar(&f.metrics, "metrics", false, "print session metrics to stderr on exit")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return f, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}
	return f, nil
}

func run(ctx context.Context, log *logio.Logger) error {
	f, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	reg := NewRegistry()
	var opts = []SessionOption{
		WithRegistry(reg),
		WithOutput(os.Stdout),
		WithPrompt(defaultPrompt),
		WithBanner(banner...),
		WithFarewell(farewell...),
	}
	if fd := os.Stdin.Fd(); isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		opts = append(opts, WithLineReader(newLinerReader(reg)))
	} else {
		opts = append(opts, WithInput(os.Stdin))
	}
	if f.trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	var promReg *prometheus.Registry
	if f.metrics {
		promReg = prometheus.NewRegistry()
		opts = append(opts, WithMetrics(metrics.New(promReg)))
	}

	s := New(opts...)
	defer func() { log.ErrorIf(s.Close()) }()

	if f.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	err = s.Run(ctx)
	if promReg != nil {
		log.ErrorIf(metrics.Dump(os.Stderr, promReg))
	}
	return err
}
