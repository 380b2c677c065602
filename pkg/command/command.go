package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// ErrEmptyCommand is returned when a runner is asked to execute an empty argv.
var ErrEmptyCommand = errors.New("empty command")

// Runner executes external programs described by an argument vector.
type Runner interface {
	// Spawn starts argv attached to the terminal and returns without waiting for it.
	Spawn(argv []string) error
	// Capture runs argv to completion and returns its stdout followed by its stderr.
	Capture(ctx context.Context, argv []string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	log    *slog.Logger
}

// NewExecRunner returns a runner whose spawned processes inherit the process stdio.
func NewExecRunner(log *slog.Logger) *ExecRunner {
	if log == nil {
		log = slog.Default()
	}
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		log:    log,
	}
}

// Spawn starts the command and reaps it in the background once it exits.
func (r *ExecRunner) Spawn(argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", argv[0], err)
	}

	pid := cmd.Process.Pid
	r.log.Debug("Spawned external command", "command", strings.Join(argv, " "), "pid", pid)

	go func() {
		err := cmd.Wait()
		if err != nil {
			r.log.Debug("External command exited", "pid", pid, "error", err)
			return
		}
		r.log.Debug("External command exited", "pid", pid)
	}()
	return nil
}

// Capture runs the command synchronously. A non-zero exit status is not an
// error: whatever the command printed is still returned.
func (r *ExecRunner) Capture(ctx context.Context, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", ErrEmptyCommand
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return "", fmt.Errorf("run %s: %w", argv[0], err)
	}
	if exitErr != nil {
		r.log.Debug("Captured command exited with status", "command", argv[0], "code", exitErr.ExitCode())
	}

	return stdout.String() + stderr.String(), nil
}
