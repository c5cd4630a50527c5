package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theledgerdev/runway/internal/cli"
	"github.com/theledgerdev/runway/internal/engine"
	"github.com/theledgerdev/runway/internal/tui/components"
	"github.com/theledgerdev/runway/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	if a.report == nil {
		return ""
	}
	t := theme.Active
	report := a.report
	var b strings.Builder

	// Row 1: Metric cards
	trendDetail := "trend: " + string(report.BurnTrend)
	profitDetail := "profitability not in horizon"
	if report.MonthsToProfitability != nil {
		idx := *report.MonthsToProfitability
		profitDetail = "profitable " + report.Result.Points[idx].MonthLabel
	}

	metrics := []components.Metric{
		{
			Label:  "Cash",
			Value:  cli.FormatMoney(a.input.Params.CashOnHand),
			Detail: "ends " + cli.FormatMoney(report.Result.FinalCashBalance),
		},
		{
			Label:  "Net Burn",
			Value:  cli.FormatSignedMoney(report.CurrentNetBurn) + "/mo",
			Detail: trendDetail,
			Color:  burnColor(report.CurrentNetBurn),
		},
		{
			Label:  "Runway",
			Value:  cli.FormatMonths(report.Result.RunwayMonths, a.input.HorizonMonths),
			Detail: profitDetail,
			Color:  lipgloss.Color(components.ColorForRunway(float64(report.Result.RunwayMonths))),
		},
		{
			Label:  "Grade",
			Value:  report.Health.Grade.String() + " · " + report.Health.Label,
			Detail: report.Health.Description,
			Color:  lipgloss.Color(report.Health.Color),
		},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: Runway gauge
	gauge := components.RunwayGauge("Runway", report.Result.RunwayMonths,
		a.input.HorizonMonths, 8, components.CardInnerWidth(cw)-18)
	b.WriteString(components.ContentCard("", gauge, cw))
	b.WriteString("\n")

	// Row 3: Cash balance chart
	balances := make([]float64, len(report.Result.Points))
	labels := make([]string, len(report.Result.Points))
	for i, p := range report.Result.Points {
		balances[i] = p.CashBalance
		if i%6 == 0 || i == len(report.Result.Points)-1 {
			labels[i] = p.MonthLabel[:3]
		}
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Cash Balance (%d mo)", a.input.HorizonMonths),
		components.BalanceChart(balances, labels, t.Blue, components.CardInnerWidth(cw), 10),
		cw,
	))
	b.WriteString("\n")

	// Row 4: Totals + warnings
	halves := components.LayoutRow(cw, 2)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var totals strings.Builder
	rows := []struct{ label, value string }{
		{"Total revenue", cli.FormatMoney(report.Result.TotalRevenue)},
		{"Total expenses", cli.FormatMoney(report.Result.TotalExpenses)},
		{"Average net burn", cli.FormatSignedMoney(report.AverageNetBurn) + "/mo"},
	}
	for _, r := range rows {
		fmt.Fprintf(&totals, "%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-17s", r.label)),
			valueStyle.Render(r.value))
	}

	var signals strings.Builder
	if report.BurnSpike.Detected {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
		signals.WriteString(warnStyle.Render("▲ " + report.BurnSpike.Message))
		signals.WriteString("\n")
	} else {
		signals.WriteString(labelStyle.Render(report.BurnSpike.Message))
		signals.WriteString("\n")
	}
	open := 0
	for _, al := range a.alerts {
		if !al.Acknowledged {
			open++
		}
	}
	fmt.Fprintf(&signals, "%s %s\n",
		labelStyle.Render("Open alerts"),
		valueStyle.Render(fmt.Sprintf("%d of %d", open, len(a.alerts))))

	b.WriteString(components.CardRow([]string{
		components.ContentCard("Totals", totals.String(), halves[0]),
		components.ContentCard("Signals", signals.String(), halves[1]),
	}))

	return b.String()
}

func burnColor(netBurn float64) lipgloss.Color {
	t := theme.Active
	if netBurn > 0 {
		return t.Orange
	}
	return t.Green
}

func severityStyle(s engine.Severity) lipgloss.Style {
	t := theme.Active
	switch s {
	case engine.SeverityCritical:
		return lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	case engine.SeverityWarning:
		return lipgloss.NewStyle().Foreground(t.Orange).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(t.Accent)
	}
}
