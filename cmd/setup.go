package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theledgerdev/runway/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to runway!")
	fmt.Println()

	// 1. Baseline financials
	fmt.Println("  1. Default financials (press Enter to keep current)")
	cfg.Defaults.CashOnHand = promptFloat(reader, "Cash on hand", cfg.Defaults.CashOnHand)
	cfg.Defaults.MonthlyRevenue = promptFloat(reader, "Monthly revenue", cfg.Defaults.MonthlyRevenue)
	cfg.Defaults.MonthlyExpenses = promptFloat(reader, "Monthly expenses", cfg.Defaults.MonthlyExpenses)
	cfg.Defaults.RevenueGrowthRate = promptFloat(reader, "Revenue growth /yr (0.18 = 18%)", cfg.Defaults.RevenueGrowthRate)
	cfg.Defaults.ExpenseGrowthRate = promptFloat(reader, "Expense growth /yr (0.03 = 3%)", cfg.Defaults.ExpenseGrowthRate)
	fmt.Println()

	// 2. Projection horizon
	fmt.Println("  2. Projection horizon")
	fmt.Println("     (1) 12 months")
	fmt.Println("     (2) 24 months [default]")
	fmt.Println("     (3) 36 months")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "1":
		cfg.General.HorizonMonths = 12
	case "3":
		cfg.General.HorizonMonths = 36
	default:
		cfg.General.HorizonMonths = 24
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `runway setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func promptFloat(reader *bufio.Reader, label string, current float64) float64 {
	fmt.Printf("     %s [%.2f] > ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	line = strings.ReplaceAll(strings.TrimPrefix(line, "$"), ",", "")
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Printf("     (not a number, keeping %.2f)\n", current)
		return current
	}
	return v
}
