package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/rkohler/quadsheet/pkg/config"
	"github.com/rkohler/quadsheet/pkg/preset"
)

// newPresetsCmd creates the presets command for listing layout presets.
func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List available layout presets",
		Long: `List all available presets, built-in and user-defined.

User presets live in the presets.yaml file in the config directory and
shadow built-ins of the same name. Use a preset with:

  quadsheet generate input.pdf --preset <name>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets()
		},
	}
}

func runPresets() error {
	cfgDir, err := config.Dir()
	if err != nil {
		return err
	}
	presets, err := preset.Load(filepath.Join(cfgDir, config.PresetsFileName))
	if err != nil {
		return err
	}

	rows := [][]string{}
	for _, e := range presets.List() {
		rows = append(rows, []string{e.Name, e.Description})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(colorGreen)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return nameStyle
			}
			return lipgloss.NewStyle()
		})

	fmt.Println(t)
	printNextStep("Use with", "quadsheet generate input.pdf --preset <name>")
	return nil
}
