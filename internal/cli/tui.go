package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rkohler/quadsheet/pkg/errors"
	"github.com/rkohler/quadsheet/pkg/preset"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// presetPickerModel is the bubbletea model for interactive preset selection.
type presetPickerModel struct {
	entries []preset.Entry
	cursor  int
	choice  string
}

func (m presetPickerModel) Init() tea.Cmd {
	return nil
}

func (m presetPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			m.choice = m.entries[m.cursor].Name
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m presetPickerModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Select Preset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		cursor := "  "
		nameStyle := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			nameStyle = listSelectedStyle
		}
		b.WriteString(cursor + nameStyle.Render(e.Name))
		if e.Description != "" {
			b.WriteString("  " + listDimStyle.Render(e.Description))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// pickPreset runs the interactive preset picker and returns the chosen
// preset name, or "" when the user quit without selecting.
func pickPreset(m *preset.Manager) (string, error) {
	model := presetPickerModel{entries: m.List()}

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "interactive preset selection")
	}
	return final.(presetPickerModel).choice, nil
}
