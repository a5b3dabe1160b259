package testutil

import (
	"sort"

	"github.com/AntonioJCosta/pinesh/internal/core/domain/alias"
	"github.com/AntonioJCosta/pinesh/internal/core/ports"
)

// MockAliasStore is a map-backed ports.AliasStore that stores values verbatim.
type MockAliasStore struct {
	Entries map[string]string
	// SetCalls keeps track of the raw arguments passed to Set.
	SetCalls []alias.Alias
}

// NewMockAliasStore creates a MockAliasStore seeded with entries (may be nil).
func NewMockAliasStore(entries map[string]string) *MockAliasStore {
	m := &MockAliasStore{Entries: make(map[string]string)}
	for k, v := range entries {
		m.Entries[k] = v
	}
	return m
}

func (m *MockAliasStore) Set(name, value string) {
	m.SetCalls = append(m.SetCalls, alias.Alias{Name: name, Command: value})
	m.Entries[name] = value
}

func (m *MockAliasStore) Resolve(token string) string {
	if v, ok := m.Entries[token]; ok {
		return v
	}
	return token
}

func (m *MockAliasStore) Lookup(token string) (string, bool) {
	v, ok := m.Entries[token]
	return v, ok
}

func (m *MockAliasStore) List() []alias.Alias {
	out := make([]alias.Alias, 0, len(m.Entries))
	for k, v := range m.Entries {
		out = append(out, alias.Alias{Name: k, Command: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

var _ ports.AliasStore = (*MockAliasStore)(nil)
