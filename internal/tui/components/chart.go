package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theledgerdev/runway/internal/tui/theme"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(sparkBlocks[idx])
	}

	return style.Render(buf.String())
}

// BalanceChart renders a bar chart of non-negative values with a labeled
// Y axis. Intended for the monthly cash balance series; labels (one per
// value) are thinned to fit the axis.
func BalanceChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	step := niceStep(maxVal, height/2)
	ceiling := math.Ceil(maxVal/step) * step
	intervals := int(math.Round(ceiling / step))
	if intervals < 1 {
		intervals = 1
	}

	rowsPerTick := height / intervals
	if rowsPerTick < 1 {
		rowsPerTick = 1
	}
	chartH := rowsPerTick * intervals

	yLabelW := len(axisLabel(ceiling)) + 1
	if yLabelW < 5 {
		yLabelW = 5
	}
	tickRows := make(map[int]string, intervals)
	for i := 1; i <= intervals; i++ {
		tickRows[i*rowsPerTick] = axisLabel(step * float64(i))
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	// One column per value; downsample when the series is wider than the
	// chart area.
	n := len(values)
	if n > chartW {
		sampled := make([]float64, chartW)
		sampledLabels := make([]string, chartW)
		for i := range sampled {
			src := i * (n - 1) / (chartW - 1)
			sampled[i] = values[src]
			if len(labels) == n {
				sampledLabels[i] = labels[src]
			}
		}
		values, labels, n = sampled, sampledLabels, chartW
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	fillStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickRows[row])))
		b.WriteString(axisStyle.Render("│"))

		var cells strings.Builder
		for _, v := range values {
			switch {
			case v >= rowTop:
				cells.WriteRune('█')
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * float64(len(sparkBlocks)))
				if idx >= len(sparkBlocks) {
					idx = len(sparkBlocks) - 1
				}
				if idx < 0 {
					idx = 0
				}
				cells.WriteRune(sparkBlocks[idx])
			default:
				cells.WriteRune(' ')
			}
		}
		b.WriteString(barStyle.Render(cells.String()))
		b.WriteString("\n")
	}

	// X axis
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", n)))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(fillStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(thinLabels(labels, n)))
	}

	return b.String()
}

// thinLabels lays labels onto an axis of width cols, skipping any that
// would collide with an earlier one.
func thinLabels(labels []string, cols int) string {
	buf := make([]byte, cols)
	for i := range buf {
		buf[i] = ' '
	}
	lastEnd := -2
	for i, lbl := range labels {
		if lbl == "" {
			continue
		}
		pos := i
		end := pos + len(lbl)
		if pos <= lastEnd+1 || end > cols {
			continue
		}
		copy(buf[pos:end], lbl)
		lastEnd = end
	}
	return strings.TrimRight(string(buf), " ")
}

// niceStep picks a 1/2/5-scaled tick interval that yields at most
// maxTicks intervals.
func niceStep(maxVal float64, maxTicks int) float64 {
	if maxVal <= 0 {
		return 1
	}
	if maxTicks < 2 {
		maxTicks = 2
	}
	rough := maxVal / float64(maxTicks)
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	var step float64
	switch {
	case frac <= 1:
		step = base
	case frac <= 2:
		step = 2 * base
	case frac <= 5:
		step = 5 * base
	default:
		step = 10 * base
	}
	for int(math.Ceil(maxVal/step)) > maxTicks {
		step *= 2
	}
	return step
}

func axisLabel(v float64) string {
	switch {
	case v >= 1e9:
		return trimZero(v/1e9) + "B"
	case v >= 1e6:
		return trimZero(v/1e6) + "M"
	case v >= 1e3:
		return trimZero(v/1e3) + "k"
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func trimZero(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
