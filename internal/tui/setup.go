package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theledgerdev/runway/internal/config"
	"github.com/theledgerdev/runway/internal/engine"
	"github.com/theledgerdev/runway/internal/tui/theme"
)

// setupValues holds the raw form inputs for the first-run wizard.
type setupValues struct {
	Cash      string
	Revenue   string
	Expenses  string
	RevGrowth string
	ExpGrowth string
	Theme     string
}

// newSetupForm builds the first-run huh form seeded from the current
// parameters.
func newSetupForm(vals *setupValues, params engine.SimulationParams) *huh.Form {
	vals.Cash = formatSeed(params.CashOnHand)
	vals.Revenue = formatSeed(params.MonthlyRevenue)
	vals.Expenses = formatSeed(params.MonthlyExpenses)
	vals.RevGrowth = formatSeed(params.RevenueGrowthRate)
	vals.ExpGrowth = formatSeed(params.ExpenseGrowthRate)
	vals.Theme = theme.Active.Name

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cash on hand").
				Description("Current bank balance, e.g. 1200000").
				Value(&vals.Cash).
				Validate(validateAmount),
			huh.NewInput().
				Title("Monthly revenue").
				Value(&vals.Revenue).
				Validate(validateAmount),
			huh.NewInput().
				Title("Monthly expenses").
				Value(&vals.Expenses).
				Validate(validateAmount),
			huh.NewInput().
				Title("Revenue growth per year").
				Description("0.18 means 18%/yr").
				Value(&vals.RevGrowth).
				Validate(validateRate),
			huh.NewInput().
				Title("Expense growth per year").
				Description("0.03 means 3%/yr").
				Value(&vals.ExpGrowth).
				Validate(validateRate),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	)
}

// saveSetupConfig persists the wizard inputs as config defaults and
// returns the parsed parameters.
func (a *App) saveSetupConfig() (engine.SimulationParams, bool) {
	cfg, _ := config.Load()

	params := engine.SimulationParams{
		CashOnHand:        parseAmount(a.setupVals.Cash),
		MonthlyRevenue:    parseAmount(a.setupVals.Revenue),
		MonthlyExpenses:   parseAmount(a.setupVals.Expenses),
		RevenueGrowthRate: parseAmount(a.setupVals.RevGrowth),
		ExpenseGrowthRate: parseAmount(a.setupVals.ExpGrowth),
	}
	if params.Validate() != nil {
		return engine.SimulationParams{}, false
	}

	cfg.Defaults.CashOnHand = params.CashOnHand
	cfg.Defaults.MonthlyRevenue = params.MonthlyRevenue
	cfg.Defaults.MonthlyExpenses = params.MonthlyExpenses
	cfg.Defaults.RevenueGrowthRate = params.RevenueGrowthRate
	cfg.Defaults.ExpenseGrowthRate = params.ExpenseGrowthRate
	cfg.Appearance.Theme = a.setupVals.Theme
	theme.SetActive(cfg.Appearance.Theme)

	_ = config.Save(cfg)
	return params, true
}

func formatSeed(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseAmount(s string) float64 {
	s = strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(s), "$"), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func validateAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v := parseAmount(s)
	if v < 0 {
		return errors.New("must not be negative")
	}
	if v == 0 && strings.TrimSpace(s) != "0" {
		return fmt.Errorf("%q is not a number", s)
	}
	return nil
}

func validateRate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	return nil
}
