package cli

import (
	"fmt"

	"github.com/AntonioJCosta/pinesh/internal/core/ports"
	"github.com/AntonioJCosta/pinesh/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewThemesCommand creates the 'themes' subcommand.
func NewThemesCommand(catalogProvider ports.CatalogProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the console themes available to 'pine theme'.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemesCmd(cmd, args, catalogProvider)
		},
	}
	return cmd
}

func runThemesCmd(cmd *cobra.Command, _ []string, catalogProvider ports.CatalogProvider) error {
	themes, err := catalogProvider.GetThemes()
	if err != nil {
		return fmt.Errorf("could not load themes: %w", err)
	}

	out := cmd.OutOrStdout()
	profiles := themes.Profiles()
	if len(profiles) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No themes defined."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor("Available Themes:"))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Output (bg / fg)", "Input (bg / fg)", "Sample"})
	table.SetBorder(true)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, p := range profiles {
		name := p.Name
		if name == themes.DefaultName() {
			name += " (default)"
		}
		table.Append([]string{
			name,
			p.OutputBg + " / " + p.OutputFg,
			p.InputBg + " / " + p.InputFg,
			sample(p.OutputFg, p.OutputBg),
		})
	}
	table.Render()
	return nil
}

// sample paints a short swatch; it stays plain text when colors are off.
func sample(fg, bg string) string {
	style, err := ui.NewStyle(fg, bg)
	if err != nil {
		return ui.DetailColor("n/a")
	}
	return style.Sprint(" pine ")
}
