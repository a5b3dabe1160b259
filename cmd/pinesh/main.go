package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/pinesh/internal/adapters/catalog"
	"github.com/AntonioJCosta/pinesh/internal/adapters/oscommand"
	"github.com/AntonioJCosta/pinesh/internal/handlers/cli"
	"github.com/AntonioJCosta/pinesh/internal/handlers/ui"
)

// Version is set at build time
var Version = "dev"

func main() {
	cmdExec := oscommand.NewOSCommandExecutor()

	catalogProvider, err := catalog.NewYAMLProvider()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error initializing catalog: %v", err)))
		os.Exit(1)
	}

	rootCmd := cli.NewRootCommand(Version, catalogProvider, cmdExec)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
