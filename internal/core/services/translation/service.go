package translation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/AntonioJCosta/pinesh/internal/core/domain/shorthand"
	"github.com/AntonioJCosta/pinesh/internal/core/ports"
)

type service struct {
	aliases       ports.AliasStore
	rules         []shorthand.Rule
	tokenBoundary bool
}

// Option configures the translator.
type Option func(*service)

/*
WithTokenBoundaryMatching makes a shorthand prefix match only when it is
followed by whitespace or the end of the line, so "ls" no longer
rewrites "lsblk". Without it a rule matches any line that merely starts
with its prefix.
*/
func WithTokenBoundaryMatching() Option {
	return func(s *service) {
		s.tokenBoundary = true
	}
}

// NewService creates a translator over the given alias store and ordered rules.
// It panics if aliases is nil.
func NewService(aliases ports.AliasStore, rules []shorthand.Rule, opts ...Option) ports.CommandTranslator {
	if aliases == nil {
		panic("aliases cannot be nil")
	}
	s := &service{
		aliases: aliases,
		rules:   append([]shorthand.Rule(nil), rules...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Translate applies alias substitution to the first token, then the first
// matching shorthand rule. Lines that match nothing come back unchanged.
func (s *service) Translate(line string) string {
	line = s.substituteAlias(line)

	for _, rule := range s.rules {
		if !s.matches(line, rule.Prefix) {
			continue
		}
		rest := strings.TrimSpace(line[len(rule.Prefix):])
		return strings.TrimSpace(rule.Replacement + " " + rest)
	}
	return line
}

// substituteAlias replaces the first token when it is a known alias. The
// line is rebuilt from its tokens, which collapses internal whitespace.
func (s *service) substituteAlias(line string) string {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return line
	}
	value, ok := s.aliases.Lookup(tokens[0])
	if !ok {
		return line
	}
	tokens[0] = value
	return strings.Join(tokens, " ")
}

func (s *service) matches(line, prefix string) bool {
	if !strings.HasPrefix(line, prefix) {
		return false
	}
	if !s.tokenBoundary || len(line) == len(prefix) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(line[len(prefix):])
	return unicode.IsSpace(next)
}
