package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/pinesh/internal/core/ports"
	"github.com/chzyer/readline"
)

// LineReader delivers one submitted input line per call.
type LineReader interface {
	Readline() (string, error)
}

// NewReadline creates the interactive line reader. History is disabled;
// pinesh keeps no command history.
func NewReadline(stdout, stderr io.Writer) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          DefaultPrompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryLimit:    -1,
		Stdout:          stdout,
		Stderr:          stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create line reader: %w", err)
	}
	return rl, nil
}

/*
Run feeds every submitted line to controller until the input ends.
Ctrl-C on an empty line ends the session; Ctrl-C with text discards the
text. Lines are handled one at a time, in order.
*/
func Run(reader LineReader, controller ports.SessionController) error {
	for {
		line, err := reader.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if len(line) == 0 {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}
		controller.Handle(line)
	}
}
