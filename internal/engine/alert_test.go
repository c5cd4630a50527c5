package engine

import "testing"

func countByType(alerts []Alert, at AlertType) int {
	n := 0
	for _, a := range alerts {
		if a.Type == at {
			n++
		}
	}
	return n
}

func TestSynthesizeAlertsHealthGradeMapping(t *testing.T) {
	cases := []struct {
		runway       float64
		wantType     AlertType
		wantSeverity Severity
	}{
		{24, AlertRunwayHealthy, SeverityInfo},
		{10, AlertRunwayWarning, SeverityWarning},
		{2, AlertRunwayCritical, SeverityCritical},
	}

	for _, tc := range cases {
		alerts := SynthesizeAlerts(AlertInputs{
			Health:        EvaluateRunwayHealth(tc.runway),
			HorizonMonths: 24,
		})
		if len(alerts) != 1 {
			t.Fatalf("runway %.0f: got %d alerts, want exactly 1 health alert", tc.runway, len(alerts))
		}
		a := alerts[0]
		if a.Type != tc.wantType || a.Severity != tc.wantSeverity {
			t.Fatalf("runway %.0f: alert %s/%s, want %s/%s",
				tc.runway, a.Type, a.Severity, tc.wantType, tc.wantSeverity)
		}
		meta, ok := a.Metadata.(RunwayMetadata)
		if !ok {
			t.Fatalf("runway %.0f: metadata has type %T", tc.runway, a.Metadata)
		}
		if meta.RunwayMonths != tc.runway {
			t.Fatalf("metadata runway = %.0f, want %.0f", meta.RunwayMonths, tc.runway)
		}
	}
}

func TestSynthesizeAlertsSpike(t *testing.T) {
	spike := BurnSpikeResult{
		Detected:           true,
		MonthIndex:         4,
		MonthLabel:         "Jul 2026",
		ExpenseIncreasePct: 32,
		RevenueIncreasePct: 3,
		NetImpact:          -14_000,
		Message:            "Expenses jumped 32.0% in Jul 2026 while revenue grew only 3.0%",
	}

	alerts := SynthesizeAlerts(AlertInputs{
		Health:        EvaluateRunwayHealth(20),
		Spike:         spike,
		HorizonMonths: 24,
	})

	if countByType(alerts, AlertBurnSpike) != 1 {
		t.Fatalf("want exactly one burn_spike alert, got %d", countByType(alerts, AlertBurnSpike))
	}
	var found Alert
	for _, a := range alerts {
		if a.Type == AlertBurnSpike {
			found = a
		}
	}
	if found.Severity != SeverityCritical {
		t.Fatalf("burn_spike severity = %s, want critical", found.Severity)
	}
	meta, ok := found.Metadata.(BurnSpikeMetadata)
	if !ok {
		t.Fatalf("burn_spike metadata has type %T", found.Metadata)
	}
	if meta.MonthIndex != 4 || meta.NetImpact != -14_000 {
		t.Fatalf("burn_spike metadata = %+v", meta)
	}
}

func TestSynthesizeAlertsProfitability(t *testing.T) {
	idx := 5
	alerts := SynthesizeAlerts(AlertInputs{
		Health:        EvaluateRunwayHealth(24),
		Profitability: &idx,
		ProfitLabel:   "Aug 2026",
		HorizonMonths: 24,
	})

	if countByType(alerts, AlertProfitabilityAchieved) != 1 {
		t.Fatal("expected a profitability_achieved alert")
	}
}

func TestSynthesizeAlertsGrowthStall(t *testing.T) {
	retention := 0.90
	alerts := SynthesizeAlerts(AlertInputs{
		Health:              EvaluateRunwayHealth(24),
		HorizonMonths:       24,
		NetRevenueRetention: &retention,
	})
	if countByType(alerts, AlertGrowthStall) != 1 {
		t.Fatal("retention 0.90 should emit growth_stall")
	}

	healthy := 0.97
	alerts = SynthesizeAlerts(AlertInputs{
		Health:              EvaluateRunwayHealth(24),
		HorizonMonths:       24,
		NetRevenueRetention: &healthy,
	})
	if countByType(alerts, AlertGrowthStall) != 0 {
		t.Fatal("retention 0.97 should not emit growth_stall")
	}

	alerts = SynthesizeAlerts(AlertInputs{
		Health:        EvaluateRunwayHealth(24),
		HorizonMonths: 24,
	})
	if countByType(alerts, AlertGrowthStall) != 0 {
		t.Fatal("missing retention signal should not emit growth_stall")
	}
}

func TestSynthesizeAlertsOrderAndIDs(t *testing.T) {
	idx := 2
	retention := 0.85
	alerts := SynthesizeAlerts(AlertInputs{
		Health: EvaluateRunwayHealth(12),
		Spike: BurnSpikeResult{
			Detected:   true,
			MonthIndex: 3,
			MonthLabel: "Jun 2026",
		},
		Profitability:       &idx,
		ProfitLabel:         "May 2026",
		HorizonMonths:       24,
		NetRevenueRetention: &retention,
	})

	wantOrder := []AlertType{
		AlertRunwayWarning,
		AlertBurnSpike,
		AlertProfitabilityAchieved,
		AlertGrowthStall,
	}
	if len(alerts) != len(wantOrder) {
		t.Fatalf("got %d alerts, want %d", len(alerts), len(wantOrder))
	}

	seen := make(map[string]bool)
	for i, a := range alerts {
		if a.Type != wantOrder[i] {
			t.Fatalf("alert %d is %s, want %s (insertion order)", i, a.Type, wantOrder[i])
		}
		if a.ID == "" || seen[a.ID] {
			t.Fatalf("alert %d has empty or duplicate ID %q", i, a.ID)
		}
		seen[a.ID] = true
		if a.Acknowledged {
			t.Fatalf("alert %d born acknowledged", i)
		}
	}
}
