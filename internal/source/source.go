// Package source produces lines for the list from stdin, files and child
// processes. Sources run on their own goroutines and only ever hand lines to
// a Sink; the Sink is responsible for getting them onto the UI goroutine.
package source

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Sink receives one cleaned line at a time.
type Sink func(line string)

// maxLineBytes bounds a single scanned line.
const maxLineBytes = 1 << 20

// Clean 去除 ANSI 转义序列与行尾的 \r，并把 tab 展开为四个空格。
func Clean(line string) string {
	line = strings.TrimRight(ansi.Strip(line), "\r")
	return strings.ReplaceAll(line, "\t", "    ")
}

// ReadLines 逐行读取 r 直到 EOF 或 ctx 取消，每行经 Clean 后交给 sink。
func ReadLines(ctx context.Context, r io.Reader, sink Sink) error {
	if sink == nil {
		return errors.New("source: nil sink")
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		sink(Clean(scanner.Text()))
	}
	return scanner.Err()
}
