package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theledgerdev/runway/internal/tui/theme"
)

func (a App) renderAlertsTab(cw, contentH int) string {
	t := theme.Active
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	selectedStyle := lipgloss.NewStyle().Background(t.SurfaceHover)
	ackStyle := lipgloss.NewStyle().Foreground(t.Green)

	if len(a.alerts) == 0 {
		b.WriteString("\n  ")
		b.WriteString(labelStyle.Render("No alerts for this scenario."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n")
	for i, al := range a.alerts {
		cursor := "  "
		if i == a.alertCursor {
			cursor = "▸ "
		}

		mark := dimStyle.Render("·")
		if al.Acknowledged {
			mark = ackStyle.Render("✓")
		}

		head := fmt.Sprintf(" %s%s %s  %s",
			cursor, mark,
			severityStyle(al.Severity).Render(fmt.Sprintf("%-8s", al.Severity)),
			titleStyle.Render(al.Title))
		body := fmt.Sprintf("      %s", labelStyle.Render(al.Description))
		meta := fmt.Sprintf("      %s", dimStyle.Render(string(al.Type)+"  "+al.ID))

		if i == a.alertCursor {
			head = selectedStyle.Render(head)
		}
		b.WriteString(head)
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
		b.WriteString(meta)
		b.WriteString("\n\n")
	}

	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Enter acknowledges the selected alert"))
	b.WriteString("\n")

	return b.String()
}
