// Package cmd implements the runway CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theledgerdev/runway/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Horizon:  %d months\n", cfg.General.HorizonMonths)
	fmt.Printf("    Currency: %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Defaults]")
	fmt.Printf("    Cash on hand:     $%.0f\n", cfg.Defaults.CashOnHand)
	fmt.Printf("    Monthly revenue:  $%.0f\n", cfg.Defaults.MonthlyRevenue)
	fmt.Printf("    Monthly expenses: $%.0f\n", cfg.Defaults.MonthlyExpenses)
	fmt.Printf("    Revenue growth:   %.1f%%/yr\n", cfg.Defaults.RevenueGrowthRate*100)
	fmt.Printf("    Expense growth:   %.1f%%/yr\n", cfg.Defaults.ExpenseGrowthRate*100)
	fmt.Println()

	fmt.Println("  [Signals]")
	if cfg.Signals.NetRevenueRetention != nil {
		fmt.Printf("    Net revenue retention: %.0f%%\n", *cfg.Signals.NetRevenueRetention*100)
	} else {
		fmt.Println("    Net revenue retention: not set")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `runway setup` to reconfigure.")
	return nil
}
