package aliasstore

import (
	"sort"
	"strings"
	"sync"

	"github.com/AntonioJCosta/pinesh/internal/core/domain/alias"
	"github.com/AntonioJCosta/pinesh/internal/core/ports"
)

type service struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewService creates an empty alias store. Entries live as long as the store.
func NewService() ports.AliasStore {
	return &service{entries: make(map[string]string)}
}

// Set inserts or overwrites name. An existing value is replaced, never appended to.
func (s *service) Set(name, value string) {
	name = strings.TrimSpace(name)
	value = stripQuotes(strings.TrimSpace(value))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[name] = value
}

// Resolve returns the value stored for an exact match on token, else token.
func (s *service) Resolve(token string) string {
	if value, ok := s.Lookup(token); ok {
		return value
	}
	return token
}

func (s *service) Lookup(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[token]
	return value, ok
}

// List returns a snapshot of all aliases sorted by name.
func (s *service) List() []alias.Alias {
	s.mu.RLock()
	aliases := make([]alias.Alias, 0, len(s.entries))
	for name, value := range s.entries {
		aliases = append(aliases, alias.Alias{Name: name, Command: value})
	}
	s.mu.RUnlock()

	sort.Slice(aliases, func(i, j int) bool {
		return aliases[i].Name < aliases[j].Name
	})
	return aliases
}

// stripQuotes removes one leading and one trailing double quote, if present.
func stripQuotes(value string) string {
	value = strings.TrimPrefix(value, `"`)
	return strings.TrimSuffix(value, `"`)
}
