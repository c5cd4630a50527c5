package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theledgerdev/runway/internal/cli"
	"github.com/theledgerdev/runway/internal/engine"
)

var projectionCmd = &cobra.Command{
	Use:   "projection",
	Short: "Month-by-month cash projection table",
	RunE:  runProjection,
}

func init() {
	rootCmd.AddCommand(projectionCmd)
}

func runProjection(_ *cobra.Command, _ []string) error {
	in, err := analysisInput()
	if err != nil {
		return err
	}

	report, err := engine.AnalyzeBurn(in)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CASH PROJECTION"))
	fmt.Println()

	balances := make([]float64, len(report.Result.Points))
	rows := make([][]string, 0, len(report.Result.Points))
	for i, p := range report.Result.Points {
		balances[i] = p.CashBalance
		rows = append(rows, []string{
			p.MonthLabel,
			cli.FormatMoney(p.Revenue),
			cli.FormatMoney(p.Expenses),
			cli.FormatSignedMoney(-p.NetBurn),
			cli.FormatMoney(p.CashBalance),
		})
	}

	fmt.Printf("  Balance  %s\n\n", cli.RenderSparkline(balances))

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%d-Month Projection", in.HorizonMonths),
		Headers: []string{"Month", "Revenue", "Expenses", "Net", "Balance"},
		Rows:    rows,
	}))

	fmt.Printf("  Runway: %s    Trend: %s\n\n",
		cli.FormatMonths(report.Result.RunwayMonths, in.HorizonMonths),
		report.BurnTrend)

	return nil
}
