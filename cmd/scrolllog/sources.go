package main

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"scrolllog/internal/source"
	"scrolllog/internal/tui"

	"golang.org/x/term"
)

var errNoInput = errors.New("no input: pipe data into scrolllog, pass -file, or give a command")

// buildSources picks the line sources for the parsed args. stdin is only
// used when no file or command is given and it is not a terminal.
func buildSources(a cliArgs, stdin io.Reader, stdinIsTTY bool) ([]tui.Source, error) {
	if len(a.command) > 0 {
		name, args := a.command[0], a.command[1:]
		return []tui.Source{{
			Name: strings.Join(a.command, " "),
			Run: func(ctx context.Context, sink source.Sink) error {
				return source.RunCommand(ctx, name, args, sink)
			},
		}}, nil
	}
	if len(a.files) > 0 {
		sources := make([]tui.Source, 0, len(a.files))
		for _, path := range a.files {
			var opts []source.TailOption
			if a.fromEnd {
				opts = append(opts, source.FromEnd())
			}
			tail := source.NewTail(path, opts...)
			sources = append(sources, tui.Source{Name: path, Run: tail.Run})
		}
		return sources, nil
	}
	if stdinIsTTY {
		return nil, errNoInput
	}
	return []tui.Source{{
		Name: "stdin",
		Run: func(ctx context.Context, sink source.Sink) error {
			return source.ReadLines(ctx, stdin, sink)
		},
	}}, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
