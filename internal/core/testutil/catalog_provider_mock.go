package testutil

import (
	"github.com/AntonioJCosta/pinesh/internal/core/domain/shorthand"
	"github.com/AntonioJCosta/pinesh/internal/core/domain/theme"
	"github.com/AntonioJCosta/pinesh/internal/core/ports"
)

// MockCatalogProvider is a mock implementation of ports.CatalogProvider.
type MockCatalogProvider struct {
	GetShorthandsFunc func() ([]shorthand.Rule, error)
	GetThemesFunc     func() (theme.Catalog, error)
}

func (m *MockCatalogProvider) GetShorthands() ([]shorthand.Rule, error) {
	if m.GetShorthandsFunc != nil {
		return m.GetShorthandsFunc()
	}
	return nil, nil
}

func (m *MockCatalogProvider) GetThemes() (theme.Catalog, error) {
	if m.GetThemesFunc != nil {
		return m.GetThemesFunc()
	}
	return theme.Catalog{}, nil
}

var _ ports.CatalogProvider = (*MockCatalogProvider)(nil)
