package session

import (
	"strings"
	"sync"

	"github.com/AntonioJCosta/pinesh/internal/core/domain/theme"
	"github.com/AntonioJCosta/pinesh/internal/core/ports"
)

// Directive prefixes and the fixed lines a session emits.
const (
	ThemeDirective = "pine theme"
	SetDirective   = "pine set"
	EnvDirective   = "pine env"

	EchoPrefix    = ">> "
	RunPrefix     = "[run] "
	NoOutput      = "[no output]"
	UsageError    = `[error] invalid format. Use: pine set var: "value"`
	NoAliasesLine = "[env] no variables set"
)

type service struct {
	mu           sync.Mutex
	display      ports.DisplaySurface
	aliases      ports.AliasStore
	translator   ports.CommandTranslator
	executor     ports.ProcessExecutor
	themes       theme.Catalog
	currentTheme string
}

// NewService creates a session controller writing to display.
// It panics if any dependency is nil.
func NewService(
	display ports.DisplaySurface,
	aliases ports.AliasStore,
	translator ports.CommandTranslator,
	executor ports.ProcessExecutor,
	themes theme.Catalog,
) ports.SessionController {
	if display == nil {
		panic("display cannot be nil")
	}
	if aliases == nil {
		panic("aliases cannot be nil")
	}
	if translator == nil {
		panic("translator cannot be nil")
	}
	if executor == nil {
		panic("executor cannot be nil")
	}
	return &service{
		display:    display,
		aliases:    aliases,
		translator: translator,
		executor:   executor,
		themes:     themes,
	}
}

/*
Handle processes one submitted line. The line is trimmed first; blank
lines are ignored without any output. Directives are handled in place,
anything else is translated and executed. Calls are serialized, so a
second submission waits for a running command to finish.
*/
func (s *service) Handle(inputLine string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := strings.TrimSpace(inputLine)
	s.display.ClearInput()
	if line == "" {
		return
	}

	s.display.AppendLine(EchoPrefix + line)

	switch {
	case strings.HasPrefix(line, ThemeDirective):
		s.switchTheme(strings.TrimSpace(line[len(ThemeDirective):]))
	case strings.HasPrefix(line, SetDirective):
		s.setAlias(line[len(SetDirective):])
	case line == EnvDirective:
		s.listAliases()
	default:
		s.run(line)
	}
}

// SwitchTheme applies the named theme and announces it.
func (s *service) SwitchTheme(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.switchTheme(name)
}

func (s *service) CurrentTheme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTheme
}

func (s *service) switchTheme(name string) {
	profile, _ := s.themes.Lookup(name)
	s.display.ApplyColors(profile.OutputBg, profile.OutputFg, profile.InputBg, profile.InputFg)
	s.currentTheme = profile.Name

	s.display.AppendLine(themeSwitchedLine(name))
	s.display.AppendLine("")
}

func (s *service) setAlias(rest string) {
	if a, err := parseAliasDirective(rest); err != nil {
		s.display.AppendLine(UsageError)
	} else {
		// Read the value back so the line shows what the store kept.
		s.aliases.Set(a.Name, a.Command)
		name := strings.TrimSpace(a.Name)
		s.display.AppendLine(envLine(name, s.aliases.Resolve(name)))
	}
	s.display.AppendLine("")
}

func (s *service) listAliases() {
	aliases := s.aliases.List()
	if len(aliases) == 0 {
		s.display.AppendLine(NoAliasesLine)
	} else {
		for _, line := range aliasTable(aliases) {
			s.display.AppendLine(line)
		}
	}
	s.display.AppendLine("")
}

func (s *service) run(line string) {
	translated := s.translator.Translate(line)
	if translated != line {
		s.display.AppendLine(RunPrefix + translated)
	}

	result := s.executor.Run(translated)
	if result == "" {
		s.display.AppendLine(NoOutput)
	} else {
		s.display.AppendLine(result)
	}
	s.display.AppendLine("")
}
