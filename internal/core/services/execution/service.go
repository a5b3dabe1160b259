package execution

import (
	"errors"
	"os/exec"

	"github.com/AntonioJCosta/pinesh/internal/core/domain/command"
	"github.com/AntonioJCosta/pinesh/internal/core/ports"
)

// FaultPrefix marks a command that could not be run.
const FaultPrefix = "[error] "

type service struct {
	executor    ports.CommandExecutor
	interpreter ports.Interpreter
}

// NewService creates a process executor running commands through interpreter.
// It panics if executor is nil.
func NewService(executor ports.CommandExecutor, interpreter ports.Interpreter) ports.ProcessExecutor {
	if executor == nil {
		panic("executor cannot be nil")
	}
	return &service{executor: executor, interpreter: interpreter}
}

// Execute runs commandLine to completion. Exit statuses are ignored; only
// a failure to start or run the interpreter is reported, as *command.ExecutionFault.
func (s *service) Execute(commandLine string) (command.Output, error) {
	stdout, stderr, err := s.executor.Execute(s.interpreter, commandLine)
	out := command.Output{Stdout: stdout, Stderr: stderr}
	if err == nil {
		return out, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, nil
	}
	return out, &command.ExecutionFault{Command: commandLine, Err: err}
}

// Run renders Execute for display.
func (s *service) Run(commandLine string) string {
	out, err := s.Execute(commandLine)
	return Render(out, err)
}

// Render turns an execution outcome into the text shown to the user.
func Render(out command.Output, err error) string {
	var fault *command.ExecutionFault
	if errors.As(err, &fault) {
		return FaultPrefix + fault.Err.Error()
	}
	if err != nil {
		return FaultPrefix + err.Error()
	}
	return out.Combined()
}
