package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/theledgerdev/runway/internal/engine"
	"github.com/theledgerdev/runway/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runway.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestScenarioRoundTrip(t *testing.T) {
	s := openTestStore(t)

	retention := 0.92
	sc := model.Scenario{
		Name: "seed-round",
		Params: engine.SimulationParams{
			CashOnHand:        1_200_000,
			MonthlyExpenses:   60_000,
			MonthlyRevenue:    85_000,
			ExpenseGrowthRate: 0.03,
			RevenueGrowthRate: 0.18,
		},
		NetRevenueRetention: &retention,
		Notes:               "post-seed plan",
	}

	if err := s.SaveScenario(sc); err != nil {
		t.Fatalf("SaveScenario: %v", err)
	}

	got, err := s.GetScenario("seed-round")
	if err != nil {
		t.Fatalf("GetScenario: %v", err)
	}
	if got.Params != sc.Params {
		t.Fatalf("params = %+v, want %+v", got.Params, sc.Params)
	}
	if got.NetRevenueRetention == nil || *got.NetRevenueRetention != retention {
		t.Fatalf("retention = %v, want %v", got.NetRevenueRetention, retention)
	}
	if got.Notes != "post-seed plan" {
		t.Fatalf("notes = %q", got.Notes)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatal("timestamps not populated")
	}
}

func TestScenarioUpsert(t *testing.T) {
	s := openTestStore(t)

	sc := model.Scenario{Name: "plan", Params: engine.SimulationParams{CashOnHand: 100}}
	if err := s.SaveScenario(sc); err != nil {
		t.Fatalf("SaveScenario: %v", err)
	}

	sc.Params.CashOnHand = 250
	if err := s.SaveScenario(sc); err != nil {
		t.Fatalf("SaveScenario update: %v", err)
	}

	got, err := s.GetScenario("plan")
	if err != nil {
		t.Fatalf("GetScenario: %v", err)
	}
	if got.Params.CashOnHand != 250 {
		t.Fatalf("cash = %.0f after update, want 250", got.Params.CashOnHand)
	}

	all, err := s.ListScenarios()
	if err != nil {
		t.Fatalf("ListScenarios: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d scenarios, want 1", len(all))
	}
}

func TestScenarioNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetScenario("missing")
	if !errors.Is(err, ErrScenarioNotFound) {
		t.Fatalf("error = %v, want ErrScenarioNotFound", err)
	}
	if err := s.DeleteScenario("missing"); !errors.Is(err, ErrScenarioNotFound) {
		t.Fatalf("delete error = %v, want ErrScenarioNotFound", err)
	}
}

func freshAlerts(t *testing.T) []engine.Alert {
	t.Helper()
	report, err := engine.AnalyzeBurn(engine.AnalyzeInput{
		Params: engine.SimulationParams{
			CashOnHand:      100_000,
			MonthlyExpenses: 20_000,
			MonthlyRevenue:  5_000,
		},
	})
	if err != nil {
		t.Fatalf("AnalyzeBurn: %v", err)
	}
	return report.Alerts
}

func TestAlertPersistenceAndAcknowledge(t *testing.T) {
	s := openTestStore(t)

	alerts := freshAlerts(t)
	if err := s.ReplaceAlerts("plan", alerts); err != nil {
		t.Fatalf("ReplaceAlerts: %v", err)
	}

	stored, err := s.ListAlerts("plan")
	if err != nil {
		t.Fatalf("ListAlerts: %v", err)
	}
	if len(stored) != len(alerts) {
		t.Fatalf("stored %d alerts, want %d", len(stored), len(alerts))
	}
	for i, a := range stored {
		if a.Type != alerts[i].Type {
			t.Fatalf("alert %d type = %s, want %s (insertion order)", i, a.Type, alerts[i].Type)
		}
		if a.Acknowledged {
			t.Fatalf("alert %d stored as acknowledged", i)
		}
	}

	if err := s.AcknowledgeAlert(stored[0].ID); err != nil {
		t.Fatalf("AcknowledgeAlert: %v", err)
	}
	count, err := s.UnacknowledgedCount("plan")
	if err != nil {
		t.Fatalf("UnacknowledgedCount: %v", err)
	}
	if count != len(stored)-1 {
		t.Fatalf("unacked = %d, want %d", count, len(stored)-1)
	}

	if err := s.AcknowledgeAlert("nope"); !errors.Is(err, ErrAlertNotFound) {
		t.Fatalf("ack unknown id error = %v, want ErrAlertNotFound", err)
	}
}

func TestAcknowledgedSurvivesReplace(t *testing.T) {
	s := openTestStore(t)

	first := freshAlerts(t)
	if err := s.ReplaceAlerts("plan", first); err != nil {
		t.Fatalf("ReplaceAlerts: %v", err)
	}
	stored, err := s.ListAlerts("plan")
	if err != nil {
		t.Fatalf("ListAlerts: %v", err)
	}
	if err := s.AcknowledgeAlert(stored[0].ID); err != nil {
		t.Fatalf("AcknowledgeAlert: %v", err)
	}
	ackedType := stored[0].Type

	// A fresh analysis produces new IDs but the same alert types; the ack
	// carries over by type.
	if err := s.ReplaceAlerts("plan", freshAlerts(t)); err != nil {
		t.Fatalf("ReplaceAlerts second run: %v", err)
	}
	stored, err = s.ListAlerts("plan")
	if err != nil {
		t.Fatalf("ListAlerts: %v", err)
	}
	for _, a := range stored {
		if a.Type == ackedType && !a.Acknowledged {
			t.Fatalf("%s lost its acknowledged state across replace", a.Type)
		}
	}
}

func TestAlertMetadataRoundTrip(t *testing.T) {
	s := openTestStore(t)

	// A depleting scenario with a known spike month.
	report, err := engine.AnalyzeBurn(engine.AnalyzeInput{
		Params: engine.SimulationParams{
			CashOnHand:        400_000,
			MonthlyExpenses:   30_000,
			MonthlyRevenue:    20_000,
			ExpenseGrowthRate: 3.0, // 25%/month compounded: immediate spike
		},
	})
	if err != nil {
		t.Fatalf("AnalyzeBurn: %v", err)
	}
	if !report.BurnSpike.Detected {
		t.Fatal("fixture scenario did not produce a spike")
	}

	if err := s.ReplaceAlerts("hot", report.Alerts); err != nil {
		t.Fatalf("ReplaceAlerts: %v", err)
	}
	stored, err := s.ListAlerts("hot")
	if err != nil {
		t.Fatalf("ListAlerts: %v", err)
	}

	for _, a := range stored {
		switch a.Type {
		case engine.AlertBurnSpike:
			meta, ok := a.Metadata.(engine.BurnSpikeMetadata)
			if !ok {
				t.Fatalf("burn_spike metadata revived as %T", a.Metadata)
			}
			if meta.MonthIndex != report.BurnSpike.MonthIndex {
				t.Fatalf("spike month = %d, want %d", meta.MonthIndex, report.BurnSpike.MonthIndex)
			}
		case engine.AlertRunwayHealthy, engine.AlertRunwayWarning, engine.AlertRunwayCritical:
			if _, ok := a.Metadata.(engine.RunwayMetadata); !ok {
				t.Fatalf("runway metadata revived as %T", a.Metadata)
			}
		}
	}
}
