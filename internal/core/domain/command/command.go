package command

import (
	"fmt"
	"strings"
)

// Output holds the captured streams of a finished child process.
type Output struct {
	Stdout string
	Stderr string
}

// Combined joins the trimmed streams, stderr on its own line after stdout.
func (o Output) Combined() string {
	var b strings.Builder
	if out := strings.TrimSpace(o.Stdout); out != "" {
		b.WriteString(out)
	}
	if errOut := strings.TrimSpace(o.Stderr); errOut != "" {
		b.WriteString("\n")
		b.WriteString(errOut)
	}
	return strings.TrimSpace(b.String())
}

// ExecutionFault reports a command whose interpreter could not be started
// or failed outside of a normal exit.
type ExecutionFault struct {
	Command string
	Err     error
}

func (f *ExecutionFault) Error() string {
	return fmt.Sprintf("running %q: %v", f.Command, f.Err)
}

func (f *ExecutionFault) Unwrap() error {
	return f.Err
}
