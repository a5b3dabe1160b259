package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/pinesh/internal/core/ports"
	"github.com/AntonioJCosta/pinesh/internal/core/services/aliasstore"
	"github.com/spf13/cobra"
)

// NewTranslateCommand creates the 'translate' subcommand.
func NewTranslateCommand(catalogProvider ports.CatalogProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <command line>",
		Short: "Print the native command a pine line translates to, without running it.",
		Long: `Joins the arguments into one line and prints what the interactive shell
would run for it. No variables are set, so only shorthands apply.
Flags are passed through as part of the line.`,
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslateCmd(cmd, args, catalogProvider)
		},
	}
	return cmd
}

func runTranslateCmd(cmd *cobra.Command, args []string, catalogProvider ports.CatalogProvider) error {
	translator, err := newTranslator(aliasstore.NewService(), catalogProvider)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), translator.Translate(strings.Join(args, " ")))
	return nil
}
