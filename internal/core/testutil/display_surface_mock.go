package testutil

import "github.com/AntonioJCosta/pinesh/internal/core/ports"

// Colors is one ApplyColors call.
type Colors struct {
	OutputBg, OutputFg, InputBg, InputFg string
}

// MockDisplaySurface records everything a session sends to it.
type MockDisplaySurface struct {
	Lines      []string
	Applied    []Colors
	ClearCalls int

	// Events interleaves "clear" and "line" so ordering can be asserted.
	Events []string
}

func (m *MockDisplaySurface) AppendLine(text string) {
	m.Lines = append(m.Lines, text)
	m.Events = append(m.Events, "line")
}

func (m *MockDisplaySurface) ClearInput() {
	m.ClearCalls++
	m.Events = append(m.Events, "clear")
}

func (m *MockDisplaySurface) ApplyColors(outputBg, outputFg, inputBg, inputFg string) {
	m.Applied = append(m.Applied, Colors{outputBg, outputFg, inputBg, inputFg})
}

var _ ports.DisplaySurface = (*MockDisplaySurface)(nil)
