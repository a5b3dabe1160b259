/*
Package console is a terminal display surface for a pine session. Output
lines are painted with the active theme's output colors and the prompt
with its input colors.
*/
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/AntonioJCosta/pinesh/internal/core/ports"
	"github.com/AntonioJCosta/pinesh/internal/handlers/ui"
	"github.com/fatih/color"
)

// DefaultPrompt is shown in front of the input line.
const DefaultPrompt = "pine> "

// Console implements ports.DisplaySurface on a terminal.
type Console struct {
	mu        sync.Mutex
	out       io.Writer
	errOut    io.Writer
	prompt    string
	setPrompt func(string)
	output    *color.Color
	input     *color.Color
}

// Option configures a Console.
type Option func(*Console)

// WithPromptSetter registers the function that redraws the input prompt,
// typically (*readline.Instance).SetPrompt.
func WithPromptSetter(set func(string)) Option {
	return func(c *Console) {
		c.setPrompt = set
	}
}

// WithErrorWriter sets where color warnings go. Defaults to out.
func WithErrorWriter(w io.Writer) Option {
	return func(c *Console) {
		c.errOut = w
	}
}

// New creates a console writing to out with uncolored output until ApplyColors is called.
func New(out io.Writer, opts ...Option) *Console {
	c := &Console{
		out:    out,
		errOut: out,
		prompt: DefaultPrompt,
		output: color.New(),
		input:  color.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AppendLine writes text followed by a newline. Each physical line is
// colored on its own so the background stops at the line break.
func (c *Console) AppendLine(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			fmt.Fprintln(c.out)
			continue
		}
		fmt.Fprintln(c.out, c.output.Sprint(line))
	}
}

// ClearInput redraws an empty prompt in the input colors.
func (c *Console) ClearInput() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.redrawPrompt()
}

// ApplyColors switches both color pairs. Unparsable colors fall back to the
// terminal default and are reported on the error writer.
func (c *Console) ApplyColors(outputBg, outputFg, inputBg, inputFg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	output, err := ui.NewStyle(outputFg, outputBg)
	if err != nil {
		fmt.Fprintln(c.errOut, ui.WarningColor(fmt.Sprintf("Warning: output colors: %v", err)))
	}
	input, err := ui.NewStyle(inputFg, inputBg)
	if err != nil {
		fmt.Fprintln(c.errOut, ui.WarningColor(fmt.Sprintf("Warning: input colors: %v", err)))
	}
	c.output = output
	c.input = input
	c.redrawPrompt()
}

func (c *Console) redrawPrompt() {
	if c.setPrompt != nil {
		c.setPrompt(c.input.Sprint(c.prompt))
	}
}

var _ ports.DisplaySurface = (*Console)(nil)
