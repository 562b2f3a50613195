package source

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"scrolllog/internal/logger"

	"github.com/creack/pty"
)

// ErrStart wraps failures to launch the child or allocate its pty.
var ErrStart = errors.New("source: failed to start command")

// RunCommand runs name with args under a pty so the child line-buffers its
// output, emitting each output line. It returns once the child exits.
func RunCommand(ctx context.Context, name string, args []string, sink Sink) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("empty command")
	}
	if sink == nil {
		return errors.New("source: nil sink")
	}
	log := logger.Named("source").WithField("command", name)

	cmd := exec.CommandContext(ctx, name, args...)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStart, err)
	}
	defer ptmx.Close()
	log.WithField("pid", cmd.Process.Pid).Info("command started")

	readErr := ReadLines(ctx, ptmx, sink)
	// Linux reports EIO on the master once the child side closes.
	if errors.Is(readErr, syscall.EIO) {
		readErr = nil
	}

	err = cmd.Wait()
	if err != nil {
		log.WithError(err).Warn("command exited")
		return fmt.Errorf("command failed: %w", err)
	}
	if readErr != nil && !errors.Is(readErr, context.Canceled) {
		return readErr
	}
	log.Info("command exited")
	return nil
}
