package oscommand

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/AntonioJCosta/pinesh/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface using the operating system's shell.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

/*
DefaultInterpreter returns the host command interpreter: %COMSPEC% /C on
Windows (cmd.exe when COMSPEC is unset) and /bin/sh -c everywhere else.
*/
func DefaultInterpreter() ports.Interpreter {
	if runtime.GOOS == "windows" {
		comspec := os.Getenv("COMSPEC")
		if comspec == "" {
			comspec = "cmd.exe"
		}
		return ports.Interpreter{Path: comspec, Args: []string{"/C"}}
	}
	return ports.Interpreter{Path: "/bin/sh", Args: []string{"-c"}}
}

// Execute runs the given pipeline string through interpreter and returns its stdout, stderr, and any error.
// The call blocks until the child exits. A non-zero exit surfaces as a wrapped *exec.ExitError.
func (e *OSCommandExecutor) Execute(interpreter ports.Interpreter, pipeline string) (string, string, error) {
	if interpreter.Path == "" {
		interpreter = DefaultInterpreter()
	}

	cmd := buildCommand(interpreter, pipeline)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		// Include stderr in the error message for better diagnostics.
		if trimmed := strings.TrimSpace(stderr); trimmed != "" {
			return stdout, stderr, fmt.Errorf("executing pipeline with shell '%s': %w. Stderr: %s", interpreter.Path, err, trimmed)
		}
		return stdout, stderr, fmt.Errorf("executing pipeline with shell '%s': %w", interpreter.Path, err)
	}
	return stdout, stderr, nil
}

// buildCommand places pipeline after the interpreter's arguments.
func buildCommand(interpreter ports.Interpreter, pipeline string) *exec.Cmd {
	args := append(append([]string(nil), interpreter.Args...), pipeline)
	cmd := exec.Command(interpreter.Path, args...)
	setRawCmdLine(cmd, interpreter, pipeline)
	return cmd
}
