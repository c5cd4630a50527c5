package engine

import (
	"fmt"
	"math"
	"time"
)

// ProjectionPoint is one simulated month. Points are created once per run
// and never mutated; index order is chronological order.
type ProjectionPoint struct {
	MonthLabel    string
	MonthIndex    int
	CashBalance   float64 // clamped to >= 0 for display
	Revenue       float64
	Expenses      float64
	NetBurn       float64 // expenses - revenue
	CumulativeNet float64
}

// SimulationResult aggregates a full projection run.
type SimulationResult struct {
	Points []ProjectionPoint

	// RunwayMonths counts the months cash stays strictly positive before
	// first going non-positive. If cash never depletes inside the window it
	// saturates at the horizon; the engine does not extrapolate past it.
	RunwayMonths int

	// ProfitabilityMonthIndex is the first month where revenue >= expenses,
	// or nil if that never happens within the horizon.
	ProfitabilityMonthIndex *int

	FinalCashBalance float64
	TotalRevenue     float64
	TotalExpenses    float64
	AverageNetBurn   float64
}

// RunSimulation projects cash flow from the current month. See SimulateFrom.
func RunSimulation(params SimulationParams, horizonMonths int) (*SimulationResult, error) {
	return SimulateFrom(params, horizonMonths, time.Now())
}

// SimulateFrom produces a fixed-horizon monthly projection starting at the
// month containing start. Revenue and expenses compound monthly from their
// annualized rates: base * (1 + rate/12)^t. The stored cash balance is
// clamped at zero for display, but runway is determined from the unclamped
// running value.
func SimulateFrom(params SimulationParams, horizonMonths int, start time.Time) (*SimulationResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if horizonMonths < 1 {
		return nil, fmt.Errorf("%w: horizon must be at least 1 month (got %d)", ErrInvalidParams, horizonMonths)
	}

	monthStart := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())

	revGrowth := 1 + params.RevenueGrowthRate/12
	expGrowth := 1 + params.ExpenseGrowthRate/12

	result := &SimulationResult{
		Points: make([]ProjectionPoint, 0, horizonMonths),
	}

	cash := params.CashOnHand
	cumulative := 0.0
	runway := horizonMonths
	depleted := false

	for t := 0; t < horizonMonths; t++ {
		revenue := params.MonthlyRevenue * math.Pow(revGrowth, float64(t))
		expenses := params.MonthlyExpenses * math.Pow(expGrowth, float64(t))
		netBurn := expenses - revenue

		cash -= netBurn
		cumulative -= netBurn

		// Runway ends the first month burn drags the unclamped balance to
		// or below zero. A balance sitting at zero with no burn is not
		// depletion.
		if !depleted && netBurn > 0 && cash <= 0 {
			runway = t
			depleted = true
		}

		if result.ProfitabilityMonthIndex == nil && revenue >= expenses {
			idx := t
			result.ProfitabilityMonthIndex = &idx
		}

		result.TotalRevenue += revenue
		result.TotalExpenses += expenses

		result.Points = append(result.Points, ProjectionPoint{
			MonthLabel:    monthStart.AddDate(0, t, 0).Format("Jan 2006"),
			MonthIndex:    t,
			CashBalance:   math.Max(0, cash),
			Revenue:       revenue,
			Expenses:      expenses,
			NetBurn:       netBurn,
			CumulativeNet: cumulative,
		})
	}

	result.RunwayMonths = runway
	result.FinalCashBalance = result.Points[horizonMonths-1].CashBalance
	result.AverageNetBurn = (result.TotalExpenses - result.TotalRevenue) / float64(horizonMonths)

	return result, nil
}
