//go:build windows

package oscommand

import (
	"os/exec"
	"strings"
	"syscall"

	"github.com/AntonioJCosta/pinesh/internal/core/ports"
)

/*
setRawCmdLine hands cmd.exe its command line verbatim as
`<comspec> /C "<pipeline>"`. The default argument quoting escapes embedded
quotes with backslashes, which cmd.exe does not understand.
Interpreters that do not end in /C keep the default quoting.
*/
func setRawCmdLine(cmd *exec.Cmd, interpreter ports.Interpreter, pipeline string) {
	n := len(interpreter.Args)
	if n == 0 || !strings.EqualFold(interpreter.Args[n-1], "/C") {
		return
	}
	parts := append([]string{interpreter.Path}, interpreter.Args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: strings.Join(parts, " ") + ` "` + pipeline + `"`,
	}
}
