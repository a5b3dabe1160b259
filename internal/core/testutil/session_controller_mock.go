package testutil

import "github.com/AntonioJCosta/pinesh/internal/core/ports"

// MockSessionController records the lines and themes it receives.
type MockSessionController struct {
	HandleCalls []string
	ThemeCalls  []string
	Theme       string
}

func (m *MockSessionController) Handle(inputLine string) {
	m.HandleCalls = append(m.HandleCalls, inputLine)
}

func (m *MockSessionController) SwitchTheme(name string) {
	m.ThemeCalls = append(m.ThemeCalls, name)
	m.Theme = name
}

func (m *MockSessionController) CurrentTheme() string {
	return m.Theme
}

var _ ports.SessionController = (*MockSessionController)(nil)
