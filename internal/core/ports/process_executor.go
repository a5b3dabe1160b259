package ports

import "github.com/AntonioJCosta/pinesh/internal/core/domain/command"

// ProcessExecutor runs a translated command line to completion.
type ProcessExecutor interface {
	// Execute blocks until the child exits. The error, if any, is a
	// *command.ExecutionFault; a non-zero exit status is not a fault.
	Execute(commandLine string) (command.Output, error)

	// Run is Execute rendered for display. It never fails; faults come back
	// as "[error] ..." strings.
	Run(commandLine string) string
}
