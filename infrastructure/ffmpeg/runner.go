package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"clip-cutter/domain/clip"

	"go.uber.org/zap"
)

// CommandRunner defines the interface for running external commands
// This allows mocking exec.Command in tests
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExitError reports that a command started but exited unsuccessfully.
// Code is -1 when the process was terminated by a signal; Status then holds
// the process state, e.g. "signal: killed".
type ExitError struct {
	Code   int
	Status string
}

func (e *ExitError) Error() string {
	if e.Status != "" {
		return e.Status
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExecCommandRunner is the production implementation using os/exec.
// Arguments are passed as a vector; no shell is involved.
type ExecCommandRunner struct {
	logger *zap.Logger
	stderr io.Writer
}

// NewExecCommandRunner creates a runner that streams the command's stderr to os.Stderr
func NewExecCommandRunner(logger *zap.Logger) *ExecCommandRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecCommandRunner{logger: logger, stderr: os.Stderr}
}

// Run executes a command and waits for it. A non-zero exit is returned as
// *ExitError, anything else means the process could not be run at all.
func (r *ExecCommandRunner) Run(ctx context.Context, name string, args ...string) error {
	r.logger.Debug("running command",
		zap.String("name", name),
		zap.String("args", strings.Join(args, " ")))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result := &ExitError{Code: exitErr.ExitCode()}
		if result.Code == -1 {
			result.Status = exitErr.String()
		}
		r.logger.Debug("command exited with failure", zap.String("name", name), zap.Error(result))
		return result
	}
	r.logger.Debug("command could not be started", zap.String("name", name), zap.Error(err))
	return err
}

// classify maps a runner error onto the domain taxonomy
func classify(err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%w (%v)", clip.ErrToolFailed, exitErr)
	}
	return fmt.Errorf("%w: %v", clip.ErrExecution, err)
}

// outputArg keeps an output path that starts with '-' from being read as an
// option by prefixing it with the current directory
func outputArg(path string) string {
	if strings.HasPrefix(path, "-") {
		return "./" + path
	}
	return path
}
