package ports

import "fmt"

// ToolRunner abstracts external check-tool invocations for testability.
// Production code uses ExecToolRunner adapter; tests use MockToolRunner.
type ToolRunner interface {
	// Run executes name with args in dir, streaming the tool's own output
	// through to the user. Returns nil on exit code 0, an *ExitError if
	// the tool ran and exited non-zero, or another error if the tool
	// could not be started at all.
	Run(dir, name string, args ...string) error
}

// ExitError reports a tool that ran to completion with a non-zero exit code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
