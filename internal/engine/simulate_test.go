package engine

import (
	"errors"
	"math"
	"testing"
	"time"
)

var testStart = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func mustSimulate(t *testing.T, params SimulationParams, horizon int) *SimulationResult {
	t.Helper()
	result, err := SimulateFrom(params, horizon, testStart)
	if err != nil {
		t.Fatalf("SimulateFrom: %v", err)
	}
	return result
}

func TestSimulateHorizonShape(t *testing.T) {
	params := SimulationParams{
		CashOnHand:      500_000,
		MonthlyExpenses: 40_000,
		MonthlyRevenue:  10_000,
	}

	for _, horizon := range []int{1, 3, 24, 36} {
		result := mustSimulate(t, params, horizon)
		if len(result.Points) != horizon {
			t.Fatalf("horizon %d: got %d points", horizon, len(result.Points))
		}
		for i, p := range result.Points {
			if p.MonthIndex != i {
				t.Fatalf("horizon %d: point %d has MonthIndex %d", horizon, i, p.MonthIndex)
			}
		}
		if result.RunwayMonths < 0 || result.RunwayMonths > horizon {
			t.Fatalf("horizon %d: runway %d out of bounds", horizon, result.RunwayMonths)
		}
	}
}

func TestSimulateMonthLabels(t *testing.T) {
	result := mustSimulate(t, SimulationParams{CashOnHand: 1000, MonthlyExpenses: 10}, 3)

	want := []string{"Mar 2026", "Apr 2026", "May 2026"}
	for i, label := range want {
		if result.Points[i].MonthLabel != label {
			t.Fatalf("point %d label = %q, want %q", i, result.Points[i].MonthLabel, label)
		}
	}
}

func TestSimulateNoBurnNeverDepletes(t *testing.T) {
	params := SimulationParams{
		CashOnHand:        10_000,
		MonthlyExpenses:   50_000,
		MonthlyRevenue:    50_000,
		ExpenseGrowthRate: 0.05,
		RevenueGrowthRate: 0.10,
	}

	result := mustSimulate(t, params, 24)
	if result.RunwayMonths != 24 {
		t.Fatalf("runway = %d, want 24 (revenue covers expenses)", result.RunwayMonths)
	}
}

func TestSimulateImmediateDepletion(t *testing.T) {
	params := SimulationParams{
		CashOnHand:      0,
		MonthlyExpenses: 10_000,
		MonthlyRevenue:  2_000,
	}

	result := mustSimulate(t, params, 24)
	if result.RunwayMonths != 0 {
		t.Fatalf("runway = %d, want 0 (no cash, burning)", result.RunwayMonths)
	}
	if result.Points[0].CashBalance != 0 {
		t.Fatalf("displayed cash = %.2f, want clamped 0", result.Points[0].CashBalance)
	}
}

func TestSimulateRunwayUsesUnclampedBalance(t *testing.T) {
	// 50k cash, burning 20k/month flat: months 1 and 2 stay positive,
	// month 3 goes to -10k. Runway is 2 survived months.
	params := SimulationParams{
		CashOnHand:      50_000,
		MonthlyExpenses: 20_000,
	}

	result := mustSimulate(t, params, 12)
	if result.RunwayMonths != 2 {
		t.Fatalf("runway = %d, want 2", result.RunwayMonths)
	}
	if result.Points[2].CashBalance != 0 {
		t.Fatalf("depleted month shows %.2f, want 0", result.Points[2].CashBalance)
	}
	// Display stays clamped after depletion even as the deficit deepens
	if result.Points[3].CashBalance != 0 {
		t.Fatalf("post-depletion month shows %.2f, want 0", result.Points[3].CashBalance)
	}
}

func TestSimulateCompoundGrowth(t *testing.T) {
	params := SimulationParams{
		CashOnHand:        1_000_000,
		MonthlyExpenses:   10_000,
		MonthlyRevenue:    8_000,
		ExpenseGrowthRate: 0.12, // 1%/month compounded
		RevenueGrowthRate: 0.24, // 2%/month compounded
	}

	result := mustSimulate(t, params, 6)

	wantExp := 10_000 * math.Pow(1.01, 5)
	wantRev := 8_000 * math.Pow(1.02, 5)
	got := result.Points[5]
	if math.Abs(got.Expenses-wantExp) > 1e-6 {
		t.Fatalf("month 5 expenses = %.6f, want %.6f", got.Expenses, wantExp)
	}
	if math.Abs(got.Revenue-wantRev) > 1e-6 {
		t.Fatalf("month 5 revenue = %.6f, want %.6f", got.Revenue, wantRev)
	}
	if math.Abs(got.NetBurn-(wantExp-wantRev)) > 1e-6 {
		t.Fatalf("month 5 net burn = %.6f, want %.6f", got.NetBurn, wantExp-wantRev)
	}
}

func TestSimulateProfitabilityCrossing(t *testing.T) {
	// Revenue starts below expenses but grows much faster.
	params := SimulationParams{
		CashOnHand:        300_000,
		MonthlyExpenses:   20_000,
		MonthlyRevenue:    15_000,
		RevenueGrowthRate: 1.20, // 10%/month compounded
	}

	result := mustSimulate(t, params, 24)
	if result.ProfitabilityMonthIndex == nil {
		t.Fatal("expected a profitability crossing")
	}
	idx := *result.ProfitabilityMonthIndex
	if result.Points[idx].Revenue < result.Points[idx].Expenses {
		t.Fatalf("crossing month %d still unprofitable", idx)
	}
	if idx > 0 && result.Points[idx-1].Revenue >= result.Points[idx-1].Expenses {
		t.Fatalf("month %d was already profitable", idx-1)
	}
}

func TestSimulateNeverProfitable(t *testing.T) {
	params := SimulationParams{
		CashOnHand:      1_000_000,
		MonthlyExpenses: 50_000,
		MonthlyRevenue:  1_000,
	}

	result := mustSimulate(t, params, 24)
	if result.ProfitabilityMonthIndex != nil {
		t.Fatalf("unexpected profitability crossing at %d", *result.ProfitabilityMonthIndex)
	}
}

func TestSimulateAggregates(t *testing.T) {
	params := SimulationParams{
		CashOnHand:      100_000,
		MonthlyExpenses: 10_000,
		MonthlyRevenue:  4_000,
	}

	result := mustSimulate(t, params, 4)
	if math.Abs(result.TotalExpenses-40_000) > 1e-9 {
		t.Fatalf("total expenses = %.2f, want 40000", result.TotalExpenses)
	}
	if math.Abs(result.TotalRevenue-16_000) > 1e-9 {
		t.Fatalf("total revenue = %.2f, want 16000", result.TotalRevenue)
	}
	if math.Abs(result.AverageNetBurn-6_000) > 1e-9 {
		t.Fatalf("average net burn = %.2f, want 6000", result.AverageNetBurn)
	}
	if math.Abs(result.FinalCashBalance-76_000) > 1e-9 {
		t.Fatalf("final cash = %.2f, want 76000", result.FinalCashBalance)
	}
	last := result.Points[3]
	if math.Abs(last.CumulativeNet+24_000) > 1e-9 {
		t.Fatalf("cumulative net = %.2f, want -24000", last.CumulativeNet)
	}
}

func TestSimulateValidation(t *testing.T) {
	cases := []struct {
		name    string
		params  SimulationParams
		horizon int
	}{
		{"negative cash", SimulationParams{CashOnHand: -1}, 24},
		{"negative expenses", SimulationParams{MonthlyExpenses: -5}, 24},
		{"negative revenue", SimulationParams{MonthlyRevenue: -5}, 24},
		{"NaN expense growth", SimulationParams{ExpenseGrowthRate: math.NaN()}, 24},
		{"infinite revenue growth", SimulationParams{RevenueGrowthRate: math.Inf(1)}, 24},
		{"infinite cash", SimulationParams{CashOnHand: math.Inf(1)}, 24},
		{"zero horizon", SimulationParams{CashOnHand: 100}, 0},
		{"negative horizon", SimulationParams{CashOnHand: 100}, -3},
	}

	for _, tc := range cases {
		_, err := SimulateFrom(tc.params, tc.horizon, testStart)
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("%s: error %v does not wrap ErrInvalidParams", tc.name, err)
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	params := SimulationParams{
		CashOnHand:        750_000,
		MonthlyExpenses:   55_000,
		MonthlyRevenue:    30_000,
		ExpenseGrowthRate: 0.06,
		RevenueGrowthRate: 0.25,
	}

	a := mustSimulate(t, params, 24)
	b := mustSimulate(t, params, 24)

	if a.RunwayMonths != b.RunwayMonths {
		t.Fatalf("runway differs between runs: %d vs %d", a.RunwayMonths, b.RunwayMonths)
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("point %d differs between identical runs", i)
		}
	}
}
