package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theledgerdev/runway/internal/engine"
	"github.com/theledgerdev/runway/internal/export"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the projection and summary to an xlsx workbook",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "runway.xlsx", "Output file path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	in, err := analysisInput()
	if err != nil {
		return err
	}

	report, err := engine.AnalyzeBurn(in)
	if err != nil {
		return err
	}

	if err := export.WriteWorkbook(flagExportOut, report); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("  Wrote %s (%d months)\n", flagExportOut, len(report.Result.Points))
	}
	return nil
}
