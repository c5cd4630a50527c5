package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/theledgerdev/runway/internal/cli"
	"github.com/theledgerdev/runway/internal/engine"
	"github.com/theledgerdev/runway/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full financial health report for the current scenario",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	in, err := analysisInput()
	if err != nil {
		return err
	}

	report, err := engine.AnalyzeBurn(in)
	if err != nil {
		return err
	}

	// Best effort: a broken store should not block the report itself.
	if err := persistAlerts(scenarioLabel(), report.Alerts); err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  warning: could not persist alerts: %v\n", err)
	}

	horizon := in.HorizonMonths

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINANCIAL HEALTH REPORT"))
	fmt.Println()

	gradeStyle := lipgloss.NewStyle().Foreground(cli.GradeColor(report.Health.Grade)).Bold(true)
	fmt.Printf("  Health: %s  %s\n", gradeStyle.Render("Grade "+report.Health.Grade.String()), report.Health.Label)
	fmt.Printf("  %s\n\n", report.Health.Description)

	fmt.Printf("  Runway  %s  %s\n\n",
		cli.RenderRunwayBar(report.Result.RunwayMonths, horizon, 24),
		cli.FormatMonths(report.Result.RunwayMonths, horizon))

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Position",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Cash on hand", cli.FormatMoney(in.Params.CashOnHand)},
			{"Monthly revenue", cli.FormatMoney(in.Params.MonthlyRevenue)},
			{"Monthly expenses", cli.FormatMoney(in.Params.MonthlyExpenses)},
			{"Revenue growth", cli.FormatGrowthRate(in.Params.RevenueGrowthRate)},
			{"Expense growth", cli.FormatGrowthRate(in.Params.ExpenseGrowthRate)},
		},
	}))

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Projection",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Runway", cli.FormatMonths(report.Result.RunwayMonths, horizon)},
			{"Burn trend", string(report.BurnTrend)},
			{"Current net burn", cli.FormatSignedMoney(report.CurrentNetBurn) + "/mo"},
			{"Average net burn", cli.FormatSignedMoney(report.AverageNetBurn) + "/mo"},
			{"Profitability", profitabilityCell(report)},
			{"Final cash balance", cli.FormatMoney(report.Result.FinalCashBalance)},
		},
	}))

	if report.BurnSpike.Detected {
		warnStyle := lipgloss.NewStyle().Foreground(cli.ColorOrange)
		fmt.Printf("  %s\n\n", warnStyle.Render(report.BurnSpike.Message))
	}

	if len(report.Alerts) > 0 {
		fmt.Printf("  %d alert(s) — run `runway alerts` for details\n\n", len(report.Alerts))
	}

	return nil
}

func profitabilityCell(report *engine.BurnReport) string {
	if report.MonthsToProfitability == nil {
		return "not within horizon"
	}
	idx := *report.MonthsToProfitability
	return fmt.Sprintf("month %d (%s)", idx, report.Result.Points[idx].MonthLabel)
}

func persistAlerts(scenario string, alerts []engine.Alert) error {
	db, err := store.Open(store.DefaultPath())
	if err != nil {
		return err
	}
	defer db.Close()
	return db.ReplaceAlerts(scenario, alerts)
}
