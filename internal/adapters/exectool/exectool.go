// Package exectool provides a check-tool runner adapter using exec.Command.
package exectool

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rvickers/commitgate/internal/ports"
)

// ExecToolRunner implements ports.ToolRunner using exec.Command.
// The tool's stdout and stderr are streamed to the configured writers so
// its diagnostics reach the user unmodified.
type ExecToolRunner struct {
	out    io.Writer
	errOut io.Writer
}

// Option is a functional option for configuring ExecToolRunner.
type Option func(*ExecToolRunner)

// WithOutput redirects the tool's stdout and stderr.
func WithOutput(out, errOut io.Writer) Option {
	return func(r *ExecToolRunner) {
		r.out = out
		r.errOut = errOut
	}
}

// New creates a new ExecToolRunner adapter.
func New(opts ...Option) *ExecToolRunner {
	r := &ExecToolRunner{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes name with args in dir, blocking until the tool exits.
// A non-zero exit is returned as *ports.ExitError carrying the tool's
// own exit code.
func (r *ExecToolRunner) Run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.out
	cmd.Stderr = r.errOut

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ports.ExitError{Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("running %s: %w", name, err)
}

// Compile-time check that ExecToolRunner implements ports.ToolRunner.
var _ ports.ToolRunner = (*ExecToolRunner)(nil)
