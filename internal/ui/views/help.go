package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeyReference renders the full key reference, one section per group of
// bindings. Disabled bindings are skipped.
func RenderKeyReference(title string, sections []string, groups [][]key.Binding) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	width := 0
	for _, group := range groups {
		for _, b := range group {
			if w := lipgloss.Width(b.Help().Key); w > width {
				width = w
			}
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render(title))
	help.WriteString("\n")

	for i, group := range groups {
		if i < len(sections) {
			help.WriteString(sectionStyle.Render(sections[i]))
			help.WriteString("\n")
		}
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			k := b.Help().Key
			pad := strings.Repeat(" ", width-lipgloss.Width(k)+2)
			help.WriteString(fmt.Sprintf("  %s%s%s\n", keyStyle.Render(k), pad, descStyle.Render(b.Help().Desc)))
		}
	}

	return strings.TrimRight(help.String(), "\n")
}
