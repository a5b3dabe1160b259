package session

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/pinesh/internal/core/domain/alias"
	"github.com/olekukonko/tablewriter"
)

// ErrInvalidAliasFormat indicates a "pine set" directive without a name:value pair.
var ErrInvalidAliasFormat = errors.New("alias directive must look like name: \"value\"")

// parseAliasDirective splits the text after "pine set" on its first colon.
// Trimming and unquoting are left to the alias store.
func parseAliasDirective(rest string) (alias.Alias, error) {
	name, value, found := strings.Cut(strings.TrimSpace(rest), ":")
	if !found {
		return alias.Alias{}, ErrInvalidAliasFormat
	}
	return alias.Alias{Name: name, Command: value}, nil
}

func themeSwitchedLine(name string) string {
	return fmt.Sprintf("[theme switched → %s]", name)
}

func envLine(name, value string) string {
	return fmt.Sprintf("[env] %s = %s", name, value)
}

// aliasTable renders aliases as a bordered table, one string per row.
func aliasTable(aliases []alias.Alias) []string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Variable", "Value"})
	table.SetBorder(true)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range aliases {
		table.Append([]string{a.Name, a.Command})
	}
	table.Render()

	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}
