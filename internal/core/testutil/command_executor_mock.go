package testutil

import (
	"errors"

	"github.com/AntonioJCosta/pinesh/internal/core/ports"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	ExecuteFunc func(interpreter ports.Interpreter, pipeline string) (stdout string, stderr string, err error)
}

// Execute calls the mock ExecuteFunc.
func (m *MockCommandExecutor) Execute(interpreter ports.Interpreter, pipeline string) (string, string, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(interpreter, pipeline)
	}
	return "", "", errors.New("MockCommandExecutor.ExecuteFunc not implemented")
}

var _ ports.CommandExecutor = (*MockCommandExecutor)(nil)
