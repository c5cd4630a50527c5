package engine

import "fmt"

// Spike detection thresholds: expenses jumping more than 20% month-over-month
// count as a spike unless revenue grew at least 80% as fast.
const (
	spikeExpenseThreshold = 0.20
	spikeRevenueFactor    = 0.80
)

// BurnSpikeResult reports the first month where expense growth sharply
// outpaced revenue growth. At most one spike is reported per analysis.
type BurnSpikeResult struct {
	Detected           bool
	MonthIndex         int
	MonthLabel         string
	ExpenseIncreasePct float64
	RevenueIncreasePct float64
	NetImpact          float64 // change in (revenue - expenses) between the two months
	Message            string
}

// DetectBurnSpike scans consecutive month pairs for a burn spike and stops
// at the first hit. Fewer than 2 points means no spike.
func DetectBurnSpike(points []ProjectionPoint) BurnSpikeResult {
	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1], points[i]

		var expenseChange float64
		if prev.Expenses != 0 {
			expenseChange = (curr.Expenses - prev.Expenses) / prev.Expenses
		}
		var revenueChange float64
		if prev.Revenue != 0 {
			revenueChange = (curr.Revenue - prev.Revenue) / prev.Revenue
		}

		if expenseChange > spikeExpenseThreshold && revenueChange < spikeRevenueFactor*expenseChange {
			netImpact := (curr.Revenue - curr.Expenses) - (prev.Revenue - prev.Expenses)
			return BurnSpikeResult{
				Detected:           true,
				MonthIndex:         curr.MonthIndex,
				MonthLabel:         curr.MonthLabel,
				ExpenseIncreasePct: expenseChange * 100,
				RevenueIncreasePct: revenueChange * 100,
				NetImpact:          netImpact,
				Message: fmt.Sprintf(
					"Expenses jumped %.1f%% in %s while revenue grew only %.1f%%",
					expenseChange*100, curr.MonthLabel, revenueChange*100,
				),
			}
		}
	}

	return BurnSpikeResult{Message: "No burn spikes detected"}
}
