package cli

import (
	"fmt"

	"github.com/AntonioJCosta/pinesh/internal/core/domain/theme"
	"github.com/AntonioJCosta/pinesh/internal/core/ports"
	"github.com/AntonioJCosta/pinesh/internal/core/services/aliasstore"
	"github.com/AntonioJCosta/pinesh/internal/core/services/execution"
	"github.com/AntonioJCosta/pinesh/internal/core/services/session"
	"github.com/AntonioJCosta/pinesh/internal/core/services/translation"
)

// newTranslator builds a translator over the catalog's shorthands.
func newTranslator(aliases ports.AliasStore, catalogProvider ports.CatalogProvider) (ports.CommandTranslator, error) {
	rules, err := catalogProvider.GetShorthands()
	if err != nil {
		return nil, fmt.Errorf("could not load shorthands: %w", err)
	}
	return translation.NewService(aliases, rules), nil
}

// newSession wires a controller with a fresh alias store onto display.
func newSession(
	display ports.DisplaySurface,
	catalogProvider ports.CatalogProvider,
	commandExecutor ports.CommandExecutor,
	interpreter ports.Interpreter,
) (ports.SessionController, theme.Catalog, error) {
	themes, err := catalogProvider.GetThemes()
	if err != nil {
		return nil, theme.Catalog{}, fmt.Errorf("could not load themes: %w", err)
	}

	aliases := aliasstore.NewService()
	translator, err := newTranslator(aliases, catalogProvider)
	if err != nil {
		return nil, theme.Catalog{}, err
	}
	executor := execution.NewService(commandExecutor, interpreter)

	return session.NewService(display, aliases, translator, executor, themes), themes, nil
}
