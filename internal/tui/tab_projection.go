package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theledgerdev/runway/internal/cli"
	"github.com/theledgerdev/runway/internal/tui/theme"
)

func (a App) renderProjectionTab(cw, contentH int) string {
	if a.report == nil {
		return ""
	}
	t := theme.Active
	points := a.report.Result.Points
	var b strings.Builder

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	depletedStyle := lipgloss.NewStyle().Foreground(t.Red)

	const (
		monthW = 10
		colW   = 13
	)

	header := fmt.Sprintf("%-*s %*s %*s %*s %*s",
		monthW, "Month",
		colW, "Revenue",
		colW, "Expenses",
		colW, "Net",
		colW, "Balance")
	b.WriteString("  ")
	b.WriteString(headStyle.Render(header))
	b.WriteString("\n  ")
	b.WriteString(dimStyle.Render(strings.Repeat("─", lipgloss.Width(header))))
	b.WriteString("\n")

	// j/k scrolls through months; keep the window inside the table.
	visible := contentH - 3
	if visible < 1 {
		visible = 1
	}
	offset := a.projScroll
	if offset > len(points)-visible {
		offset = len(points) - visible
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + visible
	if end > len(points) {
		end = len(points)
	}

	runway := a.report.Result.RunwayMonths
	for _, p := range points[offset:end] {
		line := fmt.Sprintf("%-*s %*s %*s %*s %*s",
			monthW, p.MonthLabel,
			colW, cli.FormatMoney(p.Revenue),
			colW, cli.FormatMoney(p.Expenses),
			colW, cli.FormatSignedMoney(-p.NetBurn),
			colW, cli.FormatMoney(p.CashBalance))
		b.WriteString("  ")
		if p.MonthIndex >= runway && runway < a.input.HorizonMonths {
			b.WriteString(depletedStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if end < len(points) {
		b.WriteString("  ")
		b.WriteString(dimStyle.Render(fmt.Sprintf("… %d more (j to scroll)", len(points)-end)))
		b.WriteString("\n")
	}

	return b.String()
}
