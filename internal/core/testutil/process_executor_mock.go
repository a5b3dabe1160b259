package testutil

import (
	"errors"

	"github.com/AntonioJCosta/pinesh/internal/core/domain/command"
	"github.com/AntonioJCosta/pinesh/internal/core/ports"
)

// MockProcessExecutor is a mock implementation of ports.ProcessExecutor.
type MockProcessExecutor struct {
	ExecuteFunc func(commandLine string) (command.Output, error)
	// ExecuteCalls keeps track of the command lines passed to Execute.
	ExecuteCalls []string
}

// Execute records the call and delegates to ExecuteFunc.
func (m *MockProcessExecutor) Execute(commandLine string) (command.Output, error) {
	m.ExecuteCalls = append(m.ExecuteCalls, commandLine)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(commandLine)
	}
	return command.Output{}, errors.New("MockProcessExecutor.ExecuteFunc not implemented")
}

// Run renders Execute the same way the real service does.
func (m *MockProcessExecutor) Run(commandLine string) string {
	out, err := m.Execute(commandLine)
	var fault *command.ExecutionFault
	switch {
	case errors.As(err, &fault):
		return "[error] " + fault.Err.Error()
	case err != nil:
		return "[error] " + err.Error()
	}
	return out.Combined()
}

var _ ports.ProcessExecutor = (*MockProcessExecutor)(nil)
