package main

import (
	"strings"

	"github.com/peterh/liner"
)

// linerReader reads lines from an interactive terminal, with in-memory
// history and completion of command names.
type linerReader struct {
	state *liner.State
}

func newLinerReader(reg *Registry) *linerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	names := reg.Names()
	state.SetCompleter(func(line string) []string {
		return completeLine(names, line)
	})
	return &linerReader{state: state}
}

// Prompt reads a line; Ctrl+C discards whatever was typed and prompts again.
func (lr *linerReader) Prompt(prompt string) (string, error) {
	for {
		line, err := lr.state.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			lr.state.AppendHistory(line)
		}
		return line, nil
	}
}

func (lr *linerReader) Close() error { return lr.state.Close() }

// completeLine completes the last word of line against names.
func completeLine(names []string, line string) []string {
	i := strings.LastIndexAny(line, " \t") + 1
	head, word := line[:i], line[i:]
	var res []string
	for _, name := range names {
		if strings.HasPrefix(name, word) {
			res = append(res, head+name)
		}
	}
	return res
}
