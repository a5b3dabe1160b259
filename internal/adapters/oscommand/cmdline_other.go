//go:build !windows

package oscommand

import (
	"os/exec"

	"github.com/AntonioJCosta/pinesh/internal/core/ports"
)

// setRawCmdLine is a no-op; arguments reach POSIX shells unquoted.
func setRawCmdLine(*exec.Cmd, ports.Interpreter, string) {}
