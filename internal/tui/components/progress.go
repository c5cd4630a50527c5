package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theledgerdev/runway/internal/tui/theme"
)

// ColorForRunway maps remaining runway months to a severity color.
func ColorForRunway(months float64) string {
	t := theme.Active
	switch {
	case months < 6:
		return string(t.Red)
	case months < 12:
		return string(t.Orange)
	case months <= 18:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// RunwayGauge renders a labeled progress bar showing runway against the
// projection horizon. A saturated gauge means the cash never runs out
// inside the horizon.
func RunwayGauge(label string, runwayMonths, horizonMonths, labelW, barWidth int) string {
	t := theme.Active

	pct := 0.0
	if horizonMonths > 0 {
		pct = float64(runwayMonths) / float64(horizonMonths)
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	color := ColorForRunway(float64(runwayMonths))

	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	value := fmt.Sprintf("%d mo", runwayMonths)
	if runwayMonths >= horizonMonths {
		value = fmt.Sprintf("%d+ mo", horizonMonths)
	}

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		valueStyle.Render(value)
}
