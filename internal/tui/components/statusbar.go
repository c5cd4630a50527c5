package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theledgerdev/runway/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar. right carries context
// like the active scenario and grade.
func RenderStatusBar(width int, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	if right != "" {
		right += " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
