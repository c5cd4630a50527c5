// Package engine implements the financial projection and health monitoring
// core: cash flow simulation under compound growth, burn trend and spike
// analysis, health grading, and alert synthesis. Everything in this package
// is a pure, synchronous transform from input parameters to output records.
package engine

import (
	"errors"
	"fmt"
	"math"
)

// DefaultHorizonMonths is the simulation window used when the caller does
// not specify one.
const DefaultHorizonMonths = 24

// ErrInvalidParams is wrapped by all parameter validation failures.
var ErrInvalidParams = errors.New("invalid simulation parameters")

// SimulationParams describes a company's cash position and trajectory.
// Growth rates are annualized decimals (0.18 = 18%/yr) compounded monthly.
type SimulationParams struct {
	CashOnHand        float64
	MonthlyExpenses   float64
	MonthlyRevenue    float64
	ExpenseGrowthRate float64
	RevenueGrowthRate float64
}

// Validate checks the caller contract: non-negative cash/expenses/revenue
// and finite growth rates. Violations fail fast rather than being clamped,
// because a silent clamp would corrupt downstream runway math.
func (p SimulationParams) Validate() error {
	switch {
	case math.IsNaN(p.CashOnHand) || math.IsInf(p.CashOnHand, 0):
		return fmt.Errorf("%w: cash on hand is not finite", ErrInvalidParams)
	case p.CashOnHand < 0:
		return fmt.Errorf("%w: cash on hand is negative (%.2f)", ErrInvalidParams, p.CashOnHand)
	case math.IsNaN(p.MonthlyExpenses) || math.IsInf(p.MonthlyExpenses, 0):
		return fmt.Errorf("%w: monthly expenses are not finite", ErrInvalidParams)
	case p.MonthlyExpenses < 0:
		return fmt.Errorf("%w: monthly expenses are negative (%.2f)", ErrInvalidParams, p.MonthlyExpenses)
	case math.IsNaN(p.MonthlyRevenue) || math.IsInf(p.MonthlyRevenue, 0):
		return fmt.Errorf("%w: monthly revenue is not finite", ErrInvalidParams)
	case p.MonthlyRevenue < 0:
		return fmt.Errorf("%w: monthly revenue is negative (%.2f)", ErrInvalidParams, p.MonthlyRevenue)
	case math.IsNaN(p.ExpenseGrowthRate) || math.IsInf(p.ExpenseGrowthRate, 0):
		return fmt.Errorf("%w: expense growth rate is not finite", ErrInvalidParams)
	case math.IsNaN(p.RevenueGrowthRate) || math.IsInf(p.RevenueGrowthRate, 0):
		return fmt.Errorf("%w: revenue growth rate is not finite", ErrInvalidParams)
	}
	return nil
}
