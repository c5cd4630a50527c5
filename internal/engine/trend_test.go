package engine

import "testing"

func pointsWithBurn(burns ...float64) []ProjectionPoint {
	points := make([]ProjectionPoint, len(burns))
	for i, b := range burns {
		points[i] = ProjectionPoint{MonthIndex: i, NetBurn: b}
	}
	return points
}

func TestAnalyzeBurnTrendIncreasing(t *testing.T) {
	points := pointsWithBurn(100, 100, 100, 150, 150, 150, 200, 200, 200)
	if trend := AnalyzeBurnTrend(points); trend != TrendIncreasing {
		t.Fatalf("trend = %s, want increasing", trend)
	}
}

func TestAnalyzeBurnTrendDecreasing(t *testing.T) {
	points := pointsWithBurn(200, 200, 200, 150, 150, 150, 100, 100, 100)
	if trend := AnalyzeBurnTrend(points); trend != TrendDecreasing {
		t.Fatalf("trend = %s, want decreasing", trend)
	}
}

func TestAnalyzeBurnTrendStableWithinDeadBand(t *testing.T) {
	// Last third averages 8% above the first third: inside the 10% band.
	points := pointsWithBurn(100, 100, 100, 104, 104, 104, 108, 108, 108)
	if trend := AnalyzeBurnTrend(points); trend != TrendStable {
		t.Fatalf("trend = %s, want stable", trend)
	}
}

func TestAnalyzeBurnTrendShortSequenceIsStable(t *testing.T) {
	for n := 0; n < 3; n++ {
		points := pointsWithBurn(make([]float64, n)...)
		for i := range points {
			points[i].NetBurn = float64(1000 * (i + 1))
		}
		if trend := AnalyzeBurnTrend(points); trend != TrendStable {
			t.Fatalf("%d points: trend = %s, want stable", n, trend)
		}
	}
}

func TestAnalyzeBurnTrendZeroBaseline(t *testing.T) {
	// First-third average is zero; the divide-by-zero guard treats the
	// change as zero rather than NaN.
	points := pointsWithBurn(0, 0, 0, 500, 500, 500, 900, 900, 900)
	if trend := AnalyzeBurnTrend(points); trend != TrendStable {
		t.Fatalf("trend = %s, want stable on zero baseline", trend)
	}
}

func TestAnalyzeBurnTrendWindowUsesFloor(t *testing.T) {
	// 10 points: window = floor(10/3) = 3. Middle values must not leak in.
	points := pointsWithBurn(100, 100, 100, 9999, 9999, 9999, 9999, 130, 130, 130)
	if trend := AnalyzeBurnTrend(points); trend != TrendIncreasing {
		t.Fatalf("trend = %s, want increasing (30%% change on 3-point windows)", trend)
	}
}
