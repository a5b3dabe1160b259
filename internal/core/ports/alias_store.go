package ports

import "github.com/AntonioJCosta/pinesh/internal/core/domain/alias"

// AliasStore defines the contract for the session's alias mapping.
type AliasStore interface {
	// Set inserts or overwrites an alias. Surrounding whitespace is trimmed
	// from both parts and one layer of double quotes from the value.
	Set(name, value string)

	// Resolve returns the stored value for token, or token itself if absent.
	Resolve(token string) string

	// Lookup reports the stored value for token and whether it exists.
	Lookup(token string) (string, bool)

	// List returns every alias sorted by name.
	List() []alias.Alias
}
