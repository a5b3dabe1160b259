package execution

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/AntonioJCosta/pinesh/internal/core/domain/command"
	"github.com/AntonioJCosta/pinesh/internal/core/ports"
	"github.com/AntonioJCosta/pinesh/internal/core/testutil"
)

func TestNewService(t *testing.T) {
	t.Run("should return a service if executor is not nil", func(t *testing.T) {
		if svc := NewService(&testutil.MockCommandExecutor{}, ports.Interpreter{}); svc == nil {
			t.Fatal("NewService() returned nil")
		}
	})

	t.Run("should panic if executor is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil executor")
			}
		}()
		_ = NewService(nil, ports.Interpreter{})
	})
}

// exitError produces a real *exec.ExitError by running a failing command.
func exitError(t *testing.T) error {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs /bin/sh to produce an exit error")
	}
	err := exec.Command("/bin/sh", "-c", "exit 2").Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *exec.ExitError, got %v", err)
	}
	return err
}

func TestService_Run(t *testing.T) {
	startErr := errors.New(`exec: "nosuchshell": executable file not found in $PATH`)

	tests := []struct {
		name   string
		stdout string
		stderr string
		err    func(t *testing.T) error
		want   string
	}{
		{name: "stdout is trimmed", stdout: "\n  listing  \n", want: "listing"},
		{name: "stderr follows stdout on a new line", stdout: "out\n", stderr: "err\n", want: "out\nerr"},
		{name: "stderr alone has no leading newline", stderr: "  only err\n", want: "only err"},
		{name: "empty output is empty", want: ""},
		{name: "whitespace-only output is empty", stdout: " \n\t", stderr: "\n", want: ""},
		{
			name:   "non-zero exit is not a fault",
			stdout: "partial\n",
			stderr: "failed\n",
			err: func(t *testing.T) error {
				return exitError(t)
			},
			want: "partial\nfailed",
		},
		{
			name: "wrapped exit error is not a fault",
			err: func(t *testing.T) error {
				return errors.Join(errors.New("executing pipeline"), exitError(t))
			},
			want: "",
		},
		{
			name: "start failure becomes an error line",
			err: func(*testing.T) error {
				return startErr
			},
			want: FaultPrefix + startErr.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var execErr error
			if tt.err != nil {
				execErr = tt.err(t)
			}
			var gotPipeline string
			mock := &testutil.MockCommandExecutor{
				ExecuteFunc: func(_ ports.Interpreter, pipeline string) (string, string, error) {
					gotPipeline = pipeline
					return tt.stdout, tt.stderr, execErr
				},
			}
			svc := NewService(mock, ports.Interpreter{Path: "/bin/sh", Args: []string{"-c"}})

			if got := svc.Run("dir"); got != tt.want {
				t.Errorf("Run() = %q, want %q", got, tt.want)
			}
			if gotPipeline != "dir" {
				t.Errorf("executor received pipeline %q, want %q", gotPipeline, "dir")
			}
		})
	}
}

func TestService_Execute_Fault(t *testing.T) {
	startErr := errors.New("fork/exec /bin/sh: no such file or directory")
	mock := &testutil.MockCommandExecutor{
		ExecuteFunc: func(ports.Interpreter, string) (string, string, error) {
			return "", "", startErr
		},
	}
	svc := NewService(mock, ports.Interpreter{})

	_, err := svc.Execute("ls")
	var fault *command.ExecutionFault
	if !errors.As(err, &fault) {
		t.Fatalf("Execute() error = %v, want *command.ExecutionFault", err)
	}
	if fault.Command != "ls" {
		t.Errorf("fault.Command = %q, want %q", fault.Command, "ls")
	}
	if !errors.Is(err, startErr) {
		t.Errorf("Execute() error does not wrap the start error: %v", err)
	}
}

func TestService_Execute_Interpreter(t *testing.T) {
	want := ports.Interpreter{Path: "cmd.exe", Args: []string{"/C"}}
	var got ports.Interpreter
	mock := &testutil.MockCommandExecutor{
		ExecuteFunc: func(interpreter ports.Interpreter, _ string) (string, string, error) {
			got = interpreter
			return "", "", nil
		},
	}
	if _, err := NewService(mock, want).Execute("dir"); err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if got.Path != want.Path || strings.Join(got.Args, " ") != "/C" {
		t.Errorf("executor received interpreter %+v, want %+v", got, want)
	}
}

func TestRender(t *testing.T) {
	plain := errors.New("boom")
	if got := Render(command.Output{Stdout: "ignored"}, plain); got != "[error] boom" {
		t.Errorf("Render(plain error) = %q, want %q", got, "[error] boom")
	}
	fault := &command.ExecutionFault{Command: "x", Err: plain}
	if got := Render(command.Output{}, fault); got != "[error] boom" {
		t.Errorf("Render(fault) = %q, want %q", got, "[error] boom")
	}
}
