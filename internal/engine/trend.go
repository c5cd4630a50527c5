package engine

import "math"

// BurnTrend classifies how net burn moves across a projection.
type BurnTrend string

const (
	TrendIncreasing BurnTrend = "increasing"
	TrendStable     BurnTrend = "stable"
	TrendDecreasing BurnTrend = "decreasing"
)

// trendThreshold is the relative change below which movement is treated as
// noise rather than a trend.
const trendThreshold = 0.10

// AnalyzeBurnTrend compares average net burn in the first third of the
// projection against the last third. Fewer than 3 points is stable by
// definition, not an error.
func AnalyzeBurnTrend(points []ProjectionPoint) BurnTrend {
	if len(points) < 3 {
		return TrendStable
	}

	window := len(points) / 3
	avgFirst := averageNetBurn(points[:window])
	avgLast := averageNetBurn(points[len(points)-window:])

	var change float64
	if avgFirst != 0 {
		change = (avgLast - avgFirst) / math.Abs(avgFirst)
	}

	switch {
	case change > trendThreshold:
		return TrendIncreasing
	case change < -trendThreshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

func averageNetBurn(points []ProjectionPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range points {
		sum += p.NetBurn
	}
	return sum / float64(len(points))
}
