package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theledgerdev/runway/internal/cli"
	"github.com/theledgerdev/runway/internal/model"
	"github.com/theledgerdev/runway/internal/store"
)

var flagScenarioNotes string

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage saved scenarios",
}

var scenarioSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current parameters as a named scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioSave,
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios",
	RunE:  runScenarioList,
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved scenario's parameters",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioShow,
}

var scenarioRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved scenario and its alerts",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioRm,
}

func init() {
	scenarioSaveCmd.Flags().StringVar(&flagScenarioNotes, "notes", "", "Free-form notes stored with the scenario")
	scenarioCmd.AddCommand(scenarioSaveCmd, scenarioListCmd, scenarioShowCmd, scenarioRmCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func runScenarioSave(_ *cobra.Command, args []string) error {
	in, err := analysisInput()
	if err != nil {
		return err
	}
	if err := in.Params.Validate(); err != nil {
		return err
	}

	db, err := store.Open(store.DefaultPath())
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now()
	sc := model.Scenario{
		Name:                args[0],
		Params:              in.Params,
		NetRevenueRetention: in.NetRevenueRetention,
		Notes:               flagScenarioNotes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := db.SaveScenario(sc); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Saved scenario %q\n", sc.Name)
	}
	return nil
}

func runScenarioList(_ *cobra.Command, _ []string) error {
	db, err := store.Open(store.DefaultPath())
	if err != nil {
		return err
	}
	defer db.Close()

	scenarios, err := db.ListScenarios()
	if err != nil {
		return err
	}

	if len(scenarios) == 0 {
		fmt.Println()
		fmt.Println("  No saved scenarios. Save one with:")
		fmt.Println("    runway scenario save <name> --cash 1200000 --expenses 85000 --revenue 60000")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(scenarios))
	for _, sc := range scenarios {
		rows = append(rows, []string{
			sc.Name,
			cli.FormatMoney(sc.Params.CashOnHand),
			cli.FormatMoney(sc.Params.MonthlyRevenue),
			cli.FormatMoney(sc.Params.MonthlyExpenses),
			sc.UpdatedAt.Format("2006-01-02"),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Saved Scenarios",
		Headers: []string{"Name", "Cash", "Revenue", "Expenses", "Updated"},
		Rows:    rows,
	}))
	return nil
}

func runScenarioShow(_ *cobra.Command, args []string) error {
	db, err := store.Open(store.DefaultPath())
	if err != nil {
		return err
	}
	defer db.Close()

	sc, err := db.GetScenario(args[0])
	if err != nil {
		return err
	}

	retention := "not set"
	if sc.NetRevenueRetention != nil {
		retention = cli.FormatPercent(*sc.NetRevenueRetention)
	}

	rows := [][]string{
		{"Cash on hand", cli.FormatMoney(sc.Params.CashOnHand)},
		{"Monthly revenue", cli.FormatMoney(sc.Params.MonthlyRevenue)},
		{"Monthly expenses", cli.FormatMoney(sc.Params.MonthlyExpenses)},
		{"Revenue growth", cli.FormatGrowthRate(sc.Params.RevenueGrowthRate)},
		{"Expense growth", cli.FormatGrowthRate(sc.Params.ExpenseGrowthRate)},
		{"Net revenue retention", retention},
		{"Created", sc.CreatedAt.Format("2006-01-02 15:04")},
		{"Updated", sc.UpdatedAt.Format("2006-01-02 15:04")},
	}
	if sc.Notes != "" {
		rows = append(rows, []string{"Notes", sc.Notes})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Scenario: " + sc.Name,
		Headers: []string{"Field", "Value"},
		Rows:    rows,
	}))
	return nil
}

func runScenarioRm(_ *cobra.Command, args []string) error {
	db, err := store.Open(store.DefaultPath())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteScenario(args[0]); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Deleted scenario %q\n", args[0])
	}
	return nil
}
