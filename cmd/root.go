package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theledgerdev/runway/internal/config"
	"github.com/theledgerdev/runway/internal/engine"
	"github.com/theledgerdev/runway/internal/store"
)

var (
	flagScenario  string
	flagCash      float64
	flagExpenses  float64
	flagRevenue   float64
	flagExpGrowth float64
	flagRevGrowth float64
	flagRetention float64
	flagHorizon   int
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "runway",
	Short: "Cash runway projection and health monitoring",
	Long: "Project a company's cash position month by month, grade its health,\n" +
		"and surface burn spikes, trend reversals, and growth stalls.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runReport
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagScenario, "scenario", "s", "", "Load a saved scenario by name")
	pf.Float64Var(&flagCash, "cash", -1, "Cash on hand")
	pf.Float64Var(&flagExpenses, "expenses", -1, "Monthly expenses")
	pf.Float64Var(&flagRevenue, "revenue", -1, "Monthly revenue")
	pf.Float64Var(&flagExpGrowth, "expense-growth", 0, "Annualized expense growth rate (0.03 = 3%)")
	pf.Float64Var(&flagRevGrowth, "revenue-growth", 0, "Annualized revenue growth rate (0.18 = 18%)")
	pf.Float64Var(&flagRetention, "retention", -1, "Net revenue retention signal (0.95 = 95%)")
	pf.IntVarP(&flagHorizon, "horizon", "m", 0, "Projection horizon in months (default from config)")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress decorative output")
}

// analysisInput resolves parameters with precedence: explicit flags, then a
// saved scenario, then config defaults. Validation is the engine's job.
func analysisInput() (engine.AnalyzeInput, error) {
	cfg, _ := config.Load()

	params := engine.SimulationParams{
		CashOnHand:        cfg.Defaults.CashOnHand,
		MonthlyExpenses:   cfg.Defaults.MonthlyExpenses,
		MonthlyRevenue:    cfg.Defaults.MonthlyRevenue,
		ExpenseGrowthRate: cfg.Defaults.ExpenseGrowthRate,
		RevenueGrowthRate: cfg.Defaults.RevenueGrowthRate,
	}
	retention := cfg.Signals.NetRevenueRetention

	if flagScenario != "" {
		db, err := store.Open(store.DefaultPath())
		if err != nil {
			return engine.AnalyzeInput{}, err
		}
		defer db.Close()

		sc, err := db.GetScenario(flagScenario)
		if err != nil {
			if errors.Is(err, store.ErrScenarioNotFound) {
				return engine.AnalyzeInput{}, fmt.Errorf("%w (run `runway scenario list`)", err)
			}
			return engine.AnalyzeInput{}, err
		}
		params = sc.Params
		if sc.NetRevenueRetention != nil {
			retention = sc.NetRevenueRetention
		}
	}

	// Flags override whatever the scenario or config supplied. The -1
	// sentinels mean "not set"; valid values are never negative.
	if flagCash >= 0 {
		params.CashOnHand = flagCash
	}
	if flagExpenses >= 0 {
		params.MonthlyExpenses = flagExpenses
	}
	if flagRevenue >= 0 {
		params.MonthlyRevenue = flagRevenue
	}
	if flagChanged("expense-growth") {
		params.ExpenseGrowthRate = flagExpGrowth
	}
	if flagChanged("revenue-growth") {
		params.RevenueGrowthRate = flagRevGrowth
	}
	if flagRetention >= 0 {
		r := flagRetention
		retention = &r
	}

	horizon := flagHorizon
	if horizon == 0 {
		horizon = cfg.General.HorizonMonths
	}

	return engine.AnalyzeInput{
		Params:              params,
		HorizonMonths:       horizon,
		NetRevenueRetention: retention,
	}, nil
}

func flagChanged(name string) bool {
	return rootCmd.PersistentFlags().Changed(name)
}

// scenarioLabel names the analyzed scenario for store keys and output.
func scenarioLabel() string {
	if flagScenario != "" {
		return flagScenario
	}
	return "default"
}
