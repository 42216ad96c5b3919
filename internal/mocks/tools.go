package mocks

import (
	"strings"

	"github.com/rvickers/commitgate/internal/ports"
)

// ToolCall records a single ToolRunner invocation.
type ToolCall struct {
	Dir  string
	Name string
	Args []string
}

// CommandLine returns the call as a single space-joined string, the same
// form used to key Results.
func (c ToolCall) CommandLine() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// MockToolRunner implements ports.ToolRunner for testing. Every call is
// recorded; results are scripted per command line.
type MockToolRunner struct {
	// Calls holds every invocation in order
	Calls []ToolCall
	// Results maps space-joined command lines to the error to return.
	// Unlisted command lines succeed.
	Results map[string]error
}

// NewMockToolRunner creates a new mock tool runner.
func NewMockToolRunner() *MockToolRunner {
	return &MockToolRunner{
		Results: make(map[string]error),
	}
}

// Run records the invocation and returns the scripted result, if any.
func (m *MockToolRunner) Run(dir, name string, args ...string) error {
	call := ToolCall{Dir: dir, Name: name, Args: args}
	m.Calls = append(m.Calls, call)
	return m.Results[call.CommandLine()]
}

// Compile-time check that MockToolRunner implements ports.ToolRunner.
var _ ports.ToolRunner = (*MockToolRunner)(nil)
