package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"scrolllog/internal/logger"

	"github.com/fsnotify/fsnotify"
)

// Tail follows a growing file, emitting complete lines as they are appended.
type Tail struct {
	path    string
	fromEnd bool
	offset  int64
	partial []byte
	log     *logger.LogEntry
}

// TailOption configures a Tail.
type TailOption func(*Tail)

// FromEnd skips the content present when the tail starts.
func FromEnd() TailOption {
	return func(t *Tail) {
		t.fromEnd = true
	}
}

// NewTail creates a Tail for path. The file is not opened until Run.
func NewTail(path string, opts ...TailOption) *Tail {
	t := &Tail{
		path: filepath.Clean(path),
		log:  logger.Named("source").WithField("path", path),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run reads the file and then blocks, emitting new lines on every write,
// until ctx is cancelled. A truncated file is re-read from the start.
func (t *Tail) Run(ctx context.Context, sink Sink) error {
	if sink == nil {
		return errors.New("source: nil sink")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so rotation (remove + create) is observed too.
	if err := watcher.Add(filepath.Dir(t.path)); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", filepath.Dir(t.path), err)
	}

	if t.fromEnd {
		if info, err := os.Stat(t.path); err == nil {
			t.offset = info.Size()
		}
	}
	if err := t.drain(sink); err != nil {
		return err
	}
	t.log.Info("tail started")

	for {
		select {
		case <-ctx.Done():
			t.log.Info("tail stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != t.path {
				continue
			}
			switch {
			case event.Op&fsnotify.Remove == fsnotify.Remove, event.Op&fsnotify.Rename == fsnotify.Rename:
				t.offset = 0
				t.partial = nil
			case event.Op&fsnotify.Create == fsnotify.Create, event.Op&fsnotify.Write == fsnotify.Write:
				if err := t.drain(sink); err != nil {
					t.log.WithError(err).Warn("tail read failed")
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			t.log.WithError(err).Warn("watcher error")
		}
	}
}

// drain emits every complete line past the current offset.
func (t *Tail) drain(sink Sink) error {
	f, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() < t.offset {
		t.log.WithField("size", info.Size()).Info("file truncated, rereading")
		t.offset = 0
		t.partial = nil
	}
	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		return err
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	t.offset += int64(len(data))

	data = append(t.partial, data...)
	for {
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			break
		}
		sink(Clean(string(data[:idx])))
		data = data[idx+1:]
	}
	t.partial = append([]byte(nil), data...)
	return nil
}
