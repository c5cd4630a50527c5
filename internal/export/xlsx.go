// Package export writes projection runs to spreadsheet workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/theledgerdev/runway/internal/engine"
)

const (
	projectionSheet = "Projection"
	summarySheet    = "Summary"
)

// WriteWorkbook writes a two-sheet workbook: the month-by-month projection
// and a summary of the analysis.
func WriteWorkbook(path string, report *engine.BurnReport) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName("Sheet1", projectionSheet)
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	if err := writeProjection(f, report.Result); err != nil {
		return err
	}
	if err := writeSummary(f, report); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeProjection(f *excelize.File, result *engine.SimulationResult) error {
	headers := []string{"Month", "Revenue", "Expenses", "Net Burn", "Cash Balance", "Cumulative Net"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(projectionSheet, cell, h); err != nil {
			return fmt.Errorf("writing projection header: %w", err)
		}
	}

	for row, p := range result.Points {
		values := []any{p.MonthLabel, p.Revenue, p.Expenses, p.NetBurn, p.CashBalance, p.CumulativeNet}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(projectionSheet, cell, v); err != nil {
				return fmt.Errorf("writing projection row %d: %w", row, err)
			}
		}
	}

	return nil
}

func writeSummary(f *excelize.File, report *engine.BurnReport) error {
	result := report.Result

	profitability := "not reached"
	if report.MonthsToProfitability != nil {
		profitability = result.Points[*report.MonthsToProfitability].MonthLabel
	}
	spike := "none"
	if report.BurnSpike.Detected {
		spike = report.BurnSpike.Message
	}

	rows := [][2]any{
		{"Health Grade", report.Health.Grade.String()},
		{"Health Label", report.Health.Label},
		{"Runway (months)", result.RunwayMonths},
		{"Burn Trend", string(report.BurnTrend)},
		{"Average Net Burn", result.AverageNetBurn},
		{"Current Net Burn", report.CurrentNetBurn},
		{"Profitability", profitability},
		{"Burn Spike", spike},
		{"Final Cash Balance", result.FinalCashBalance},
		{"Total Revenue", result.TotalRevenue},
		{"Total Expenses", result.TotalExpenses},
	}

	for i, r := range rows {
		keyCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(summarySheet, keyCell, r[0]); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
		if err := f.SetCellValue(summarySheet, valCell, r[1]); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}

	return nil
}
