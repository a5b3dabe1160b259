package ports

import (
	"github.com/AntonioJCosta/pinesh/internal/core/domain/shorthand"
	"github.com/AntonioJCosta/pinesh/internal/core/domain/theme"
)

// CatalogProvider defines the interface for sourcing the fixed shorthand
// table and theme catalog.
type CatalogProvider interface {
	GetShorthands() ([]shorthand.Rule, error)
	GetThemes() (theme.Catalog, error)
}
