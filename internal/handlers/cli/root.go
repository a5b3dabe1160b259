package cli

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/pinesh/internal/adapters/oscommand"
	"github.com/AntonioJCosta/pinesh/internal/core/ports"
	"github.com/AntonioJCosta/pinesh/internal/handlers/console"
	"github.com/spf13/cobra"
)

func NewRootCommand(
	version string,
	catalogProvider ports.CatalogProvider,
	commandExecutor ports.CommandExecutor,
) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pinesh",
		Short: "pinesh is an interactive shell that speaks pine shorthands.",
		Long: `pinesh reads commands one line at a time, rewrites pine shorthands
such as "ls" or "mk file" into native commands, expands variables set with
'pine set name: "value"' and runs the result through the host shell.

Built-in directives:
  pine theme <name>       switch the console colors (pine, neon, amber)
  pine set <name>: "val"  set a variable used as the first word of a command
  pine env                list variables set in this session`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if catalogProvider == nil {
				return fmt.Errorf("catalog provider not initialized for command %s", cmd.Name())
			}
			if commandExecutor == nil && cmd.Name() == "pinesh" {
				return fmt.Errorf("command executor not initialized for command %s", cmd.Name())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(catalogProvider, commandExecutor)
		},
	}

	rootCmd.AddCommand(NewTranslateCommand(catalogProvider))
	rootCmd.AddCommand(NewThemesCommand(catalogProvider))

	return rootCmd
}

// runRootCmd starts the interactive console and blocks until input ends.
func runRootCmd(catalogProvider ports.CatalogProvider, commandExecutor ports.CommandExecutor) error {
	rl, err := console.NewReadline(os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	defer rl.Close()

	display := console.New(rl.Stdout(), console.WithErrorWriter(rl.Stderr()), console.WithPromptSetter(rl.SetPrompt))
	controller, themes, err := newSession(display, catalogProvider, commandExecutor, oscommand.DefaultInterpreter())
	if err != nil {
		return err
	}

	controller.SwitchTheme(themes.DefaultName())
	return console.Run(rl, controller)
}
