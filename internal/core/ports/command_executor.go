package ports

// CommandExecutor defines an interface for executing shell commands.
type CommandExecutor interface {
	Execute(interpreter Interpreter, pipeline string) (stdout string, stderr string, err error)
}

// Interpreter names the host program that runs a command line and the
// arguments placed before the command, e.g. /bin/sh -c.
type Interpreter struct {
	Path string
	Args []string
}
