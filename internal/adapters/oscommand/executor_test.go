package oscommand

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/AntonioJCosta/pinesh/internal/core/ports"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("these cases drive /bin/sh")
	}
}

func TestDefaultInterpreter(t *testing.T) {
	got := DefaultInterpreter()
	if runtime.GOOS == "windows" {
		if len(got.Args) != 1 || got.Args[0] != "/C" {
			t.Errorf("DefaultInterpreter() args = %v, want [/C]", got.Args)
		}
		return
	}
	if got.Path != "/bin/sh" || len(got.Args) != 1 || got.Args[0] != "-c" {
		t.Errorf("DefaultInterpreter() = %+v, want /bin/sh -c", got)
	}
}

func TestOSCommandExecutor_Execute(t *testing.T) {
	skipOnWindows(t)
	sh := ports.Interpreter{Path: "/bin/sh", Args: []string{"-c"}}

	tests := []struct {
		name        string
		interpreter ports.Interpreter
		pipeline    string
		wantStdout  string
		wantStderr  string
		wantErr     bool
		wantExitErr bool
	}{
		{
			name:        "stdout only",
			interpreter: sh,
			pipeline:    "echo hello",
			wantStdout:  "hello\n",
		},
		{
			name:        "stderr only",
			interpreter: sh,
			pipeline:    "echo oops 1>&2",
			wantStderr:  "oops\n",
		},
		{
			name:        "both streams",
			interpreter: sh,
			pipeline:    "echo out; echo err 1>&2",
			wantStdout:  "out\n",
			wantStderr:  "err\n",
		},
		{
			name:        "zero value interpreter falls back to default",
			interpreter: ports.Interpreter{},
			pipeline:    "echo fallback",
			wantStdout:  "fallback\n",
		},
		{
			name:        "non-zero exit keeps output and reports exit error",
			interpreter: sh,
			pipeline:    "echo partial; exit 3",
			wantStdout:  "partial\n",
			wantErr:     true,
			wantExitErr: true,
		},
		{
			name:        "missing interpreter cannot start",
			interpreter: ports.Interpreter{Path: "/nonexistent/pinesh-shell", Args: []string{"-c"}},
			pipeline:    "echo never",
			wantErr:     true,
		},
	}

	executor := NewOSCommandExecutor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := executor.Execute(tt.interpreter, tt.pipeline)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			var exitErr *exec.ExitError
			if gotExitErr := errors.As(err, &exitErr); gotExitErr != tt.wantExitErr {
				t.Errorf("Execute() error is exit error = %v, want %v (err: %v)", gotExitErr, tt.wantExitErr, err)
			}
			if stdout != tt.wantStdout {
				t.Errorf("Execute() stdout = %q, want %q", stdout, tt.wantStdout)
			}
			if stderr != tt.wantStderr {
				t.Errorf("Execute() stderr = %q, want %q", stderr, tt.wantStderr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.interpreter.Path) {
				t.Errorf("Execute() error = %q, want it to name the interpreter", err)
			}
		})
	}
}

func TestOSCommandExecutor_Execute_ErrorMessage(t *testing.T) {
	skipOnWindows(t)
	executor := NewOSCommandExecutor()

	t.Run("start failure has no stderr suffix", func(t *testing.T) {
		_, _, err := executor.Execute(ports.Interpreter{Path: "/nonexistent/sh", Args: []string{"-c"}}, "echo hi")
		if err == nil {
			t.Fatal("Execute() expected an error for a missing interpreter")
		}
		if strings.Contains(err.Error(), "Stderr:") {
			t.Errorf("Execute() error = %q, want no stderr suffix", err)
		}
		if strings.HasSuffix(err.Error(), ". ") || strings.HasSuffix(err.Error(), ":") {
			t.Errorf("Execute() error = %q ends with dangling punctuation", err)
		}
	})

	t.Run("failed command keeps its stderr", func(t *testing.T) {
		_, _, err := executor.Execute(ports.Interpreter{Path: "/bin/sh", Args: []string{"-c"}}, "echo broken 1>&2; exit 1")
		if err == nil || !strings.HasSuffix(err.Error(), "Stderr: broken") {
			t.Errorf("Execute() error = %v, want it to end with %q", err, "Stderr: broken")
		}
	})
}

func TestBuildCommand(t *testing.T) {
	skipOnWindows(t)
	cmd := buildCommand(ports.Interpreter{Path: "/bin/sh", Args: []string{"-c"}}, `echo "a b"`)

	want := []string{"/bin/sh", "-c", `echo "a b"`}
	if strings.Join(cmd.Args, "|") != strings.Join(want, "|") {
		t.Errorf("buildCommand() args = %q, want %q", cmd.Args, want)
	}
	if cmd.SysProcAttr != nil {
		t.Errorf("buildCommand() set SysProcAttr on %s: %+v", runtime.GOOS, cmd.SysProcAttr)
	}
}
