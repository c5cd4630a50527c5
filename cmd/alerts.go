package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/theledgerdev/runway/internal/cli"
	"github.com/theledgerdev/runway/internal/engine"
	"github.com/theledgerdev/runway/internal/store"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "List alerts from the latest analysis",
	RunE:  runAlerts,
}

var alertsAckCmd = &cobra.Command{
	Use:   "ack <alert-id>",
	Short: "Acknowledge an alert so it stops counting as open",
	Args:  cobra.ExactArgs(1),
	RunE:  runAlertsAck,
}

func init() {
	alertsCmd.AddCommand(alertsAckCmd)
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(_ *cobra.Command, _ []string) error {
	in, err := analysisInput()
	if err != nil {
		return err
	}

	report, err := engine.AnalyzeBurn(in)
	if err != nil {
		return err
	}

	db, err := store.Open(store.DefaultPath())
	if err != nil {
		return err
	}
	defer db.Close()

	// Refresh the stored set, then read it back so acknowledged state from
	// previous runs shows up.
	label := scenarioLabel()
	if err := db.ReplaceAlerts(label, report.Alerts); err != nil {
		return err
	}
	alerts, err := db.ListAlerts(label)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ALERTS"))
	fmt.Println()

	if len(alerts) == 0 {
		fmt.Println("  No alerts for this scenario.")
		fmt.Println()
		return nil
	}

	for _, a := range alerts {
		sevStyle := lipgloss.NewStyle().Foreground(cli.SeverityColor(a.Severity)).Bold(true)
		dimStyle := lipgloss.NewStyle().Foreground(cli.ColorTextDim)

		mark := " "
		if a.Acknowledged {
			mark = "✓"
		}
		fmt.Printf("  %s %-8s %s\n", mark, sevStyle.Render(string(a.Severity)), a.Title)
		fmt.Printf("    %s\n", a.Description)
		fmt.Printf("    %s\n\n", dimStyle.Render(string(a.Type)+"  "+a.ID))
	}

	open, err := db.UnacknowledgedCount(label)
	if err != nil {
		return err
	}
	fmt.Printf("  %d open, %d total\n\n", open, len(alerts))

	return nil
}

func runAlertsAck(_ *cobra.Command, args []string) error {
	db, err := store.Open(store.DefaultPath())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AcknowledgeAlert(args[0]); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Acknowledged %s\n", args[0])
	}
	return nil
}
