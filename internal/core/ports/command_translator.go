package ports

/*
CommandTranslator defines the contract for rewriting an input line into a
command the host interpreter understands.
This is a driven port, representing a domain capability.
*/
type CommandTranslator interface {
	Translate(line string) string
}
