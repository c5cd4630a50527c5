package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theledgerdev/runway/internal/cli"
	"github.com/theledgerdev/runway/internal/tui/theme"
)

func (a App) renderScenariosTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	selectedStyle := lipgloss.NewStyle().Background(t.SurfaceHover)

	if len(a.scenarios) == 0 {
		b.WriteString("\n  ")
		b.WriteString(labelStyle.Render("No saved scenarios."))
		b.WriteString("\n\n  ")
		b.WriteString(dimStyle.Render("Save one from the shell:"))
		b.WriteString("\n  ")
		b.WriteString(dimStyle.Render("  runway scenario save seed-round --cash 1200000 --expenses 85000 --revenue 60000"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n")
	for i, sc := range a.scenarios {
		cursor := "  "
		if i == a.scenarioCursor {
			cursor = "▸ "
		}

		name := nameStyle.Render(sc.Name)
		if sc.Name == a.scenario {
			name = activeStyle.Render(sc.Name + " (active)")
		}

		head := fmt.Sprintf(" %s%s", cursor, name)
		detail := fmt.Sprintf("      %s",
			labelStyle.Render(fmt.Sprintf("cash %s · revenue %s/mo · expenses %s/mo",
				cli.FormatMoney(sc.Params.CashOnHand),
				cli.FormatMoney(sc.Params.MonthlyRevenue),
				cli.FormatMoney(sc.Params.MonthlyExpenses))))
		updated := fmt.Sprintf("      %s",
			dimStyle.Render("updated "+sc.UpdatedAt.Format("2006-01-02")))

		if i == a.scenarioCursor {
			head = selectedStyle.Render(head)
		}
		b.WriteString(head)
		b.WriteString("\n")
		b.WriteString(detail)
		b.WriteString("\n")
		b.WriteString(updated)
		b.WriteString("\n")
		if sc.Notes != "" {
			b.WriteString("      ")
			b.WriteString(dimStyle.Render(sc.Notes))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Enter loads the selected scenario"))
	b.WriteString("\n")

	return b.String()
}
